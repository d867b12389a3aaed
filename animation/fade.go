package animation

import (
	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
)

// FadeIn introduces m by raising its opacity from zero. WithShift makes it
// arrive travelling by the given offset, WithScale makes it grow from the
// given scale.
func FadeIn(m *mobject.Mobject, opts ...Option) *Transform {
	cfg := leafConfig()
	cfg.introducer = true
	cfg = cfg.with(opts)
	t := newTransform(m, "FadeIn", staticTarget(m), cfg)
	t.from = func() *mobject.Mobject {
		return faded(m, geom.Point{X: -cfg.shift.X, Y: -cfg.shift.Y, Z: -cfg.shift.Z}, cfg.scale)
	}
	return t
}

// FadeOut removes m by lowering its opacity to zero. WithShift makes it
// leave travelling by the given offset, WithScale makes it shrink or grow to
// the given scale. After removal m is restored to its starting state.
func FadeOut(m *mobject.Mobject, opts ...Option) *Transform {
	cfg := leafConfig()
	cfg.remover = true
	cfg = cfg.with(opts)
	t := newTransform(m, "FadeOut", func() (*mobject.Mobject, error) {
		return faded(m, cfg.shift, cfg.scale), nil
	}, cfg)
	t.cleanup = restoring(t.Base, t.cleanUp)
	return t
}

func faded(m *mobject.Mobject, shift geom.Point, scale float64) *mobject.Mobject {
	c := m.Copy()
	c.Fade(1)
	if scale != 1 {
		c.Scale(scale)
	}
	return c.Shift(shift)
}

// restoring returns a cleanup hook that resets the family to the snapshot
// before running next, so a removed mobject comes back unchanged if it is
// added again.
func restoring(b *Base, next func() error) func() error {
	return func() error {
		if err := b.restore(); err != nil {
			return err
		}
		if next != nil {
			return next()
		}
		return nil
	}
}
