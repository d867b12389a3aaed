package animation

import (
	"time"

	"github.com/matt-g-everett/mathanim/mobject"
)

// Add puts m on the stage. It takes no time.
func Add(m *mobject.Mobject, opts ...Option) *Base {
	cfg := leafConfig()
	cfg.runTime = 0
	cfg.introducer = true
	cfg.suspend = false
	return newBase(m, "Add", cfg.with(opts))
}

// Remove takes m off the stage at Finish. It takes no time.
func Remove(m *mobject.Mobject, opts ...Option) *Base {
	cfg := leafConfig()
	cfg.runTime = 0
	cfg.remover = true
	cfg.suspend = false
	return newBase(m, "Remove", cfg.with(opts))
}

// Waiting holds the scene still. It animates nothing.
type Waiting struct {
	*Base
	stop func() bool
}

// Wait holds still for d, or until stop reports true. stop may be nil.
func Wait(d time.Duration, stop func() bool, opts ...Option) *Waiting {
	cfg := leafConfig()
	cfg.runTime = max(d, 0)
	cfg.rate = nil
	cfg.suspend = false
	w := &Waiting{Base: newBase(nil, "Wait", cfg.with(opts)), stop: stop}
	w.optionalMobject = true
	return w
}

// ShouldStop reports whether the stop condition holds.
func (w *Waiting) ShouldStop() bool {
	return w.stop != nil && w.stop()
}
