package mobject

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
)

// Common colours.
var (
	White  = colorful.Color{R: 1, G: 1, B: 1}
	Black  = colorful.Color{}
	Red    = mustHex("#fc6255")
	Green  = mustHex("#83c167")
	Blue   = mustHex("#58c4dd")
	Yellow = mustHex("#ffff00")
	Gold   = mustHex("#f0ac5f")
	Purple = mustHex("#9a72ac")
	Grey   = mustHex("#888888")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Style holds the paint attributes of one mobject.
// FillColors may hold several colours for a gradient; the first is canonical.
type Style struct {
	StrokeColor   colorful.Color
	StrokeWidth   float64
	StrokeOpacity float64

	FillColors  []colorful.Color
	FillOpacity float64

	SheenFactor float64

	BackgroundStrokeColor   colorful.Color
	BackgroundStrokeWidth   float64
	BackgroundStrokeOpacity float64
}

// DefaultStyle is a white outline with no fill.
func DefaultStyle() Style {
	return Style{
		StrokeColor:             White,
		StrokeWidth:             4,
		StrokeOpacity:           1,
		FillColors:              []colorful.Color{White},
		FillOpacity:             0,
		BackgroundStrokeColor:   Black,
		BackgroundStrokeOpacity: 1,
	}
}

// FillColor returns the canonical fill colour.
func (s Style) FillColor() colorful.Color {
	if len(s.FillColors) == 0 {
		return Black
	}
	return s.FillColors[0]
}

// Clone returns a copy that shares no memory with s.
func (s Style) Clone() Style {
	s.FillColors = append([]colorful.Color(nil), s.FillColors...)
	return s
}

// Normalized clamps opacities into [0,1] and widths to be non-negative.
func (s Style) Normalized() Style {
	s.StrokeWidth = math.Max(s.StrokeWidth, 0)
	s.BackgroundStrokeWidth = math.Max(s.BackgroundStrokeWidth, 0)
	s.StrokeOpacity = clampOpacity(s.StrokeOpacity)
	s.FillOpacity = clampOpacity(s.FillOpacity)
	s.BackgroundStrokeOpacity = clampOpacity(s.BackgroundStrokeOpacity)
	return s
}

func clampOpacity(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// InterpolateStyle blends a and b at t. Colours are blended in RGB, scalars
// linearly, fill gradients of different length are stretched to the longer.
// t may lie outside [0,1]; the result is normalized either way.
func InterpolateStyle(a, b Style, t float64) Style {
	out := Style{
		StrokeColor:             a.StrokeColor.BlendRgb(b.StrokeColor, t),
		StrokeWidth:             geom.LerpScalar(a.StrokeWidth, b.StrokeWidth, t),
		StrokeOpacity:           geom.LerpScalar(a.StrokeOpacity, b.StrokeOpacity, t),
		FillOpacity:             geom.LerpScalar(a.FillOpacity, b.FillOpacity, t),
		SheenFactor:             geom.LerpScalar(a.SheenFactor, b.SheenFactor, t),
		BackgroundStrokeColor:   a.BackgroundStrokeColor.BlendRgb(b.BackgroundStrokeColor, t),
		BackgroundStrokeWidth:   geom.LerpScalar(a.BackgroundStrokeWidth, b.BackgroundStrokeWidth, t),
		BackgroundStrokeOpacity: geom.LerpScalar(a.BackgroundStrokeOpacity, b.BackgroundStrokeOpacity, t),
	}
	fa, fb := stretchColors(a.FillColors, len(b.FillColors)), stretchColors(b.FillColors, len(a.FillColors))
	out.FillColors = make([]colorful.Color, len(fa))
	for i := range fa {
		out.FillColors[i] = fa[i].BlendRgb(fb[i], t)
	}
	return out.Normalized()
}

// stretchColors repeats entries of colors so it has at least n of them.
func stretchColors(colors []colorful.Color, n int) []colorful.Color {
	if len(colors) == 0 {
		colors = []colorful.Color{Black}
	}
	if len(colors) >= n {
		return colors
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = colors[i*len(colors)/n]
	}
	return out
}
