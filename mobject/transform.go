package mobject

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matt-g-everett/mathanim/geom"
)

// ApplyFunction maps every point of the family through fn.
func (m *Mobject) ApplyFunction(fn func(geom.Point) geom.Point) *Mobject {
	for _, f := range m.Family() {
		for i, p := range f.points {
			f.points[i] = fn(p)
		}
	}
	return m
}

// Shift translates the family by v.
func (m *Mobject) Shift(v geom.Point) *Mobject {
	return m.ApplyFunction(func(p geom.Point) geom.Point { return r3.Add(p, v) })
}

// Scale scales the family by factor about its center.
func (m *Mobject) Scale(factor float64) *Mobject {
	return m.ScaleAbout(factor, m.Center())
}

// ScaleAbout scales the family by factor about the given point.
func (m *Mobject) ScaleAbout(factor float64, about geom.Point) *Mobject {
	return m.ApplyFunction(func(p geom.Point) geom.Point {
		return r3.Add(about, r3.Scale(factor, r3.Sub(p, about)))
	})
}

// Stretch scales the family along one axis (0, 1 or 2) about its center.
func (m *Mobject) Stretch(factor float64, axis int) *Mobject {
	c := m.Center()
	return m.ApplyFunction(func(p geom.Point) geom.Point {
		switch axis {
		case 0:
			p.X = c.X + factor*(p.X-c.X)
		case 1:
			p.Y = c.Y + factor*(p.Y-c.Y)
		case 2:
			p.Z = c.Z + factor*(p.Z-c.Z)
		}
		return p
	})
}

// Rotate turns the family by angle radians around axis through its center.
func (m *Mobject) Rotate(angle float64, axis geom.Point) *Mobject {
	return m.RotateAbout(angle, axis, m.Center())
}

// RotateAbout turns the family by angle radians around axis through about.
func (m *Mobject) RotateAbout(angle float64, axis, about geom.Point) *Mobject {
	return m.ApplyFunction(func(p geom.Point) geom.Point {
		return geom.RotateAbout(p, angle, axis, about)
	})
}

// MoveTo shifts the family so its center lands on p.
func (m *Mobject) MoveTo(p geom.Point) *Mobject {
	return m.Shift(r3.Sub(p, m.Center()))
}

// Bounds returns the bounding box of every point in the family.
func (m *Mobject) Bounds() (r3.Box, bool) {
	var box r3.Box
	found := false
	for _, f := range m.Family() {
		b, ok := geom.Bounds(f.points)
		if !ok {
			continue
		}
		if !found {
			box, found = b, true
			continue
		}
		box = geom.UnionBounds(box, b)
	}
	return box, found
}

// Center returns the center of the family's bounding box, or the origin
// when the family has no points.
func (m *Mobject) Center() geom.Point {
	box, ok := m.Bounds()
	if !ok {
		return geom.Origin
	}
	return box.Center()
}

// Width returns the horizontal extent of the family.
func (m *Mobject) Width() float64 {
	box, _ := m.Bounds()
	return box.Max.X - box.Min.X
}

// Height returns the vertical extent of the family.
func (m *Mobject) Height() float64 {
	box, _ := m.Bounds()
	return box.Max.Y - box.Min.Y
}

// SetStroke sets stroke colour and width on the family.
// A negative width leaves the width unchanged.
func (m *Mobject) SetStroke(c colorful.Color, width float64) *Mobject {
	for _, f := range m.Family() {
		f.style.StrokeColor = c
		if width >= 0 {
			f.style.StrokeWidth = width
		}
	}
	return m
}

// SetFill sets the fill colour and opacity on the family.
func (m *Mobject) SetFill(c colorful.Color, opacity float64) *Mobject {
	for _, f := range m.Family() {
		f.style.FillColors = []colorful.Color{c}
		f.style.FillOpacity = clampOpacity(opacity)
	}
	return m
}

// SetFillGradient sets a multi colour fill on the family.
func (m *Mobject) SetFillGradient(colors ...colorful.Color) *Mobject {
	for _, f := range m.Family() {
		f.style.FillColors = append([]colorful.Color(nil), colors...)
	}
	return m
}

// SetColor sets both stroke and fill colour on the family.
func (m *Mobject) SetColor(c colorful.Color) *Mobject {
	for _, f := range m.Family() {
		f.style.StrokeColor = c
		f.style.FillColors = []colorful.Color{c}
	}
	return m
}

// SetOpacity sets both stroke and fill opacity on the family.
func (m *Mobject) SetOpacity(opacity float64) *Mobject {
	opacity = clampOpacity(opacity)
	for _, f := range m.Family() {
		f.style.StrokeOpacity = opacity
		f.style.FillOpacity = opacity
		f.style.BackgroundStrokeOpacity = opacity
	}
	return m
}

// Fade multiplies the family's opacities by 1-darkness.
func (m *Mobject) Fade(darkness float64) *Mobject {
	keep := 1 - clampOpacity(darkness)
	for _, f := range m.Family() {
		f.style.StrokeOpacity *= keep
		f.style.FillOpacity *= keep
		f.style.BackgroundStrokeOpacity *= keep
	}
	return m
}

// SetSheen sets the sheen factor on the family.
func (m *Mobject) SetSheen(factor float64) *Mobject {
	for _, f := range m.Family() {
		f.style.SheenFactor = factor
	}
	return m
}

// SetBackgroundStroke sets the background stroke on the family.
func (m *Mobject) SetBackgroundStroke(c colorful.Color, width, opacity float64) *Mobject {
	for _, f := range m.Family() {
		f.style.BackgroundStrokeColor = c
		f.style.BackgroundStrokeWidth = max(width, 0)
		f.style.BackgroundStrokeOpacity = clampOpacity(opacity)
	}
	return m
}
