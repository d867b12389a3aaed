package mobject

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a sorted list of colour stops blended in HCL space.
type Gradient []struct {
	Color colorful.Color
	Pos   float64
}

// EvenGradient spaces colors evenly over [0,1].
func EvenGradient(colors ...colorful.Color) Gradient {
	g := make(Gradient, len(colors))
	for i, c := range colors {
		g[i].Color = c
		if len(colors) > 1 {
			g[i].Pos = float64(i) / float64(len(colors)-1)
		}
	}
	return g
}

// At gets the colour at position t on the gradient.
func (g Gradient) At(t float64) colorful.Color {
	if len(g) == 0 {
		return White
	}
	if t <= g[0].Pos {
		return g[0].Color
	}
	for i := 0; i < len(g)-1; i++ {
		c1, c2 := g[i], g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c2.Color
			}
			return c1.Color.BlendHcl(c2.Color, (t-c1.Pos)/(c2.Pos-c1.Pos)).Clamped()
		}
	}
	return g[len(g)-1].Color
}

// Colors samples n evenly spaced colours from the gradient.
func (g Gradient) Colors(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = g.At(t)
	}
	return out
}

// SetColorByGradient colours the point-bearing members of the family in
// order along an even gradient through colors.
func (m *Mobject) SetColorByGradient(colors ...colorful.Color) *Mobject {
	members := m.FamilyWithPoints()
	if len(members) == 0 || len(colors) == 0 {
		return m
	}
	for i, c := range EvenGradient(colors...).Colors(len(members)) {
		members[i].style.StrokeColor = c
		members[i].style.FillColors = []colorful.Color{c}
	}
	return m
}
