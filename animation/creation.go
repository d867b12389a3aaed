package animation

import (
	"fmt"

	"github.com/matt-g-everett/mathanim/mobject"
)

// DefaultFlashWidth is the fraction of the path ShowPassingFlash lights at
// once.
const DefaultFlashWidth = 0.1

// ShowPartial reveals the slice of every path in the family given by bounds.
// Empty paths stay empty.
type ShowPartial struct {
	*Base
	bounds func(progress float64) (a, b float64)
}

// NewShowPartial reveals the slice [a, b] = bounds(progress) of m's paths.
func NewShowPartial(m *mobject.Mobject, bounds func(progress float64) (a, b float64), opts ...Option) *ShowPartial {
	return newShowPartial(m, "ShowPartial", bounds, leafConfig().with(opts))
}

func newShowPartial(m *mobject.Mobject, kind string, bounds func(float64) (float64, float64), cfg config) *ShowPartial {
	s := &ShowPartial{Base: newBase(m, kind, cfg), bounds: bounds}
	s.prepare = s.check
	s.submobject = func(_ int, sub, start *mobject.Mobject, progress float64) error {
		a, b := s.bounds(progress)
		return sub.BecomePartial(start, a, b)
	}
	return s
}

func (s *ShowPartial) check() error {
	if !s.mob.SupportsPartial() {
		return fmt.Errorf("%w: %s needs paths", mobject.ErrCapability, s.Name())
	}
	return nil
}

// Create draws m's paths from start to end.
func Create(m *mobject.Mobject, opts ...Option) *ShowPartial {
	cfg := leafConfig()
	cfg.introducer = true
	return newShowPartial(m, "Create", func(p float64) (float64, float64) {
		return 0, p
	}, cfg.with(opts))
}

// Uncreate erases m's paths from end to start and removes it. After removal
// m is restored to its starting state.
func Uncreate(m *mobject.Mobject, opts ...Option) *ShowPartial {
	cfg := leafConfig()
	cfg.remover = true
	s := newShowPartial(m, "Uncreate", func(p float64) (float64, float64) {
		return 0, 1 - p
	}, cfg.with(opts))
	s.cleanup = restoring(s.Base, nil)
	return s
}

// ShowPassingFlash sends a lit slice of width along m's paths and removes
// m when the slice has passed. A width outside (0,1] uses DefaultFlashWidth.
func ShowPassingFlash(m *mobject.Mobject, width float64, opts ...Option) *ShowPartial {
	if width <= 0 || width > 1 {
		width = DefaultFlashWidth
	}
	cfg := leafConfig()
	cfg.remover = true
	s := newShowPartial(m, "ShowPassingFlash", func(p float64) (float64, float64) {
		upper := p * (1 + width)
		return clip(upper - width), clip(upper)
	}, cfg.with(opts))
	s.cleanup = restoring(s.Base, nil)
	return s
}
