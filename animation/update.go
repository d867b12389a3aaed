package animation

import (
	"github.com/matt-g-everett/mathanim/mobject"
)

// UpdateFromFunc runs fn on m every frame while it plays. m's own updaters
// keep running.
func UpdateFromFunc(m *mobject.Mobject, fn func(*mobject.Mobject), opts ...Option) *Base {
	cfg := leafConfig()
	cfg.suspend = false
	b := newBase(m, "UpdateFromFunc", cfg.with(opts))
	b.interpolate = func(float64) error {
		fn(b.mob)
		return nil
	}
	return b
}

// UpdateFromAlphaFunc runs fn on m every frame with the reshaped progress.
func UpdateFromAlphaFunc(m *mobject.Mobject, fn func(m *mobject.Mobject, alpha float64), opts ...Option) *Base {
	cfg := leafConfig()
	cfg.suspend = false
	b := newBase(m, "UpdateFromAlphaFunc", cfg.with(opts))
	b.interpolate = func(progress float64) error {
		fn(b.mob, progress)
		return nil
	}
	return b
}
