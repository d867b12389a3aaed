package animation

import (
	"errors"
	"fmt"
	"math"
)

// windowEps absorbs rounding when progress lands on a window's end.
const windowEps = 1e-9

// Succession plays its children one after another. Its run time is the sum
// of the children's run times whatever the lag ratio; the lag ratio, 1 by
// default, only decides how far into a child the next one starts.
//
// Children are begun lazily when the succession's alpha reaches their
// window and finished as soon as it passes the window's end. An outgoing
// child is always finished before the next one begins, and the incoming
// child is interpolated in the same call.
//
// A running child that implements Stopper and wants to stop is finished at
// once, and the rest of the chain moves up to take over the time it
// leaves unused.
type Succession struct {
	composite
	// shift is progress skipped by children that stopped early.
	shift float64
	// last is the progress applied by the previous call.
	last float64
}

// NewSuccession plays children in sequence.
func NewSuccession(children []Animation, opts ...Option) *Succession {
	defaults := groupConfig()
	defaults.lag = 1
	cfg := compositeConfig(children, sumRunTime, defaults, opts)
	return &Succession{composite: newComposite("Succession", children, cfg)}
}

// Current returns the first child that has not finished, nil once all
// have.
func (s *Succession) Current() Animation {
	for _, child := range s.children {
		if child.State() != StateFinished {
			return child
		}
	}
	return nil
}

// Begin starts the succession and begins the children whose window opens
// at zero.
func (s *Succession) Begin(stage Stage) error {
	if s.state != StateNotStarted {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyBegun, s.Name(), s.state)
	}
	s.stage = stage
	s.state = StateBegun
	if err := s.apply(0); err != nil {
		return s.abort(fmt.Errorf("begin %s: %w", s.Name(), err))
	}
	return nil
}

// Interpolate advances the children to alpha, finishing and beginning them
// as their windows are crossed.
func (s *Succession) Interpolate(alpha float64) error {
	if err := s.check("interpolate", alpha); err != nil {
		return err
	}
	s.state = StateInterpolating
	if err := s.apply(clip(alpha)); err != nil {
		return s.abort(err)
	}
	return nil
}

// ShouldStop reports whether the chain already played out because a child
// stopped early.
func (s *Succession) ShouldStop() bool {
	return s.shift > 0 && s.Current() == nil
}

func (s *Succession) position(alpha float64) float64 {
	return math.Min(s.progress(alpha)+s.shift, 1)
}

func (s *Succession) apply(alpha float64) error {
	s.alpha = alpha
	p := s.position(alpha)
	for i, child := range s.children {
		w := s.windows[i]
		switch child.State() {
		case StateFinished:
			continue
		case StateNotStarted:
			if p < w.start {
				s.last = p
				return nil
			}
			if err := child.Begin(s.stage); err != nil {
				return err
			}
		default:
			if st, ok := child.(Stopper); ok && st.ShouldStop() {
				s.shift += math.Max(w.end-s.last, 0)
				p = s.position(alpha)
				if err := child.Finish(); err != nil {
					return err
				}
				continue
			}
		}
		if p >= w.end-windowEps {
			if err := child.Finish(); err != nil {
				return err
			}
			continue
		}
		if err := child.Interpolate(w.local(p)); err != nil {
			return err
		}
	}
	s.last = p
	return nil
}

// Finish plays out any remaining children in order. It is idempotent.
func (s *Succession) Finish() error {
	switch s.state {
	case StateNotStarted:
		return fmt.Errorf("%w: finish %s", ErrNotBegun, s.Name())
	case StateFinished:
		return nil
	}
	s.alpha = 1
	var err error
	for _, child := range s.children {
		if child.State() == StateNotStarted {
			if berr := child.Begin(s.stage); berr != nil {
				err = errors.Join(err, berr)
				continue
			}
		}
		err = errors.Join(err, child.Finish())
	}
	s.state = StateFinished
	return err
}
