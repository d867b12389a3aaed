// Package render turns captured frames into images.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/stream"
)

// Stroke widths are given in hundredths of a scene unit.
const strokeUnit = 0.01

// View maps scene space onto a pixel grid. The frame is centred on the
// origin with y pointing up.
type View struct {
	Width      int
	Height     int
	FrameWidth float64
	Background string
}

// Rasterizer draws frames with gg.
type Rasterizer struct {
	view       View
	scale      float64
	background gg.RGBA
}

// NewRasterizer validates v and prepares a rasterizer for it.
func NewRasterizer(v View) (*Rasterizer, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", v.Width, v.Height)
	}
	if v.FrameWidth <= 0 {
		return nil, fmt.Errorf("invalid frame width %v", v.FrameWidth)
	}
	bg, err := colorful.Hex(v.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	r := new(Rasterizer)
	r.view = v
	r.scale = float64(v.Width) / v.FrameWidth
	r.background = gg.RGB(bg.R, bg.G, bg.B)
	return r, nil
}

// View returns the view the rasterizer was created with.
func (r *Rasterizer) View() View { return r.view }

// ToPixel maps a scene point to image coordinates.
func (r *Rasterizer) ToPixel(p geom.Point) (x, y float64) {
	return float64(r.view.Width)/2 + p.X*r.scale, float64(r.view.Height)/2 - p.Y*r.scale
}

// Rasterize draws every node of f bottom first and returns the image.
func (r *Rasterizer) Rasterize(f *stream.Frame) (image.Image, error) {
	dc := gg.NewContext(r.view.Width, r.view.Height)
	defer dc.Close()
	dc.ClearWithColor(r.background)
	dc.SetLineJoin(gg.LineJoinRound)

	var errs []error
	for i := range f.Nodes {
		if err := r.drawNode(dc, &f.Nodes[i]); err != nil {
			errs = append(errs, fmt.Errorf("node %s: %w", f.Nodes[i].ID, err))
		}
	}
	return dc.Image(), errors.Join(errs...)
}

func (r *Rasterizer) drawNode(dc *gg.Context, n *stream.Node) error {
	if len(n.Points) < geom.PointsPerCurve {
		return nil
	}
	s := n.Style.Normalized()

	if s.BackgroundStrokeWidth > 0 && s.BackgroundStrokeOpacity > 0 {
		r.tracePath(dc, n.Points)
		c := s.BackgroundStrokeColor.Clamped()
		dc.SetRGBA(c.R, c.G, c.B, s.BackgroundStrokeOpacity)
		dc.SetLineWidth(s.BackgroundStrokeWidth * strokeUnit * r.scale)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if s.FillOpacity > 0 && len(s.FillColors) > 0 {
		r.tracePath(dc, n.Points)
		if len(s.FillColors) > 1 {
			dc.SetFillBrush(r.gradient(n.Points, s.FillColors, s.FillOpacity))
		} else {
			c := s.FillColors[0].Clamped()
			dc.SetRGBA(c.R, c.G, c.B, s.FillOpacity)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if s.StrokeWidth > 0 && s.StrokeOpacity > 0 {
		r.tracePath(dc, n.Points)
		c := s.StrokeColor.Clamped()
		dc.SetRGBA(c.R, c.G, c.B, s.StrokeOpacity)
		dc.SetLineWidth(s.StrokeWidth * strokeUnit * r.scale)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// tracePath adds the curves of points to the current path. A curve that
// does not start where the previous one ended opens a new subpath, and a
// subpath returning to its first point is closed.
func (r *Rasterizer) tracePath(dc *gg.Context, points []geom.Point) {
	var first, last geom.Point
	open := false
	for _, c := range geom.Curves(points) {
		if !open || !geom.AlmostEqual(c.P0, last, 1e-9) {
			if open && geom.AlmostEqual(first, last, 1e-9) {
				dc.ClosePath()
			}
			dc.NewSubPath()
			dc.MoveTo(r.ToPixel(c.P0))
			first, open = c.P0, true
		}
		x1, y1 := r.ToPixel(c.P1)
		x2, y2 := r.ToPixel(c.P2)
		x3, y3 := r.ToPixel(c.P3)
		dc.CubicTo(x1, y1, x2, y2, x3, y3)
		last = c.P3
	}
	if open && geom.AlmostEqual(first, last, 1e-9) {
		dc.ClosePath()
	}
}

// gradient spreads colors left to right across the bounds of points.
func (r *Rasterizer) gradient(points []geom.Point, colors []colorful.Color, opacity float64) gg.Brush {
	box, _ := geom.Bounds(points)
	x0, y := r.ToPixel(geom.Pt(box.Min.X, (box.Min.Y+box.Max.Y)/2, 0))
	x1, _ := r.ToPixel(geom.Pt(box.Max.X, 0, 0))
	b := gg.NewLinearGradientBrush(x0, y, x1, y)
	for i, c := range colors {
		c = c.Clamped()
		b.AddColorStop(float64(i)/float64(len(colors)-1), gg.RGBA2(c.R, c.G, c.B, opacity))
	}
	return b
}
