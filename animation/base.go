package animation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/matt-g-everett/mathanim/mobject"
)

// Base implements the lifecycle shared by leaf animations. Concrete
// animations embed it and fill in the hooks.
type Base struct {
	mob   *mobject.Mobject
	kind  string
	cfg   config
	state State
	stage Stage
	alpha float64

	start       *mobject.Mobject
	family      []*mobject.Mobject
	startFamily []*mobject.Mobject
	withPoints  int
	suspended   bool
	aux         []*mobject.Mobject

	optionalMobject bool

	// prepare runs before the snapshot is taken. A failure in prepare or
	// in the first interpolation leaves the animation NotStarted.
	prepare func() error
	// interpolate replaces the per-submobject walk. It receives the
	// reshaped progress.
	interpolate func(progress float64) error
	// submobject writes family member i at its own lagged progress.
	submobject func(i int, sub, start *mobject.Mobject, progress float64) error
	// cleanup runs at Finish, after removal from the stage and before the
	// snapshot is released.
	cleanup func() error
}

func newBase(m *mobject.Mobject, kind string, cfg config) *Base {
	b := new(Base)
	b.mob = m
	b.kind = kind
	b.cfg = cfg
	return b
}

// Mobject returns the bound mobject.
func (b *Base) Mobject() *mobject.Mobject { return b.mob }

// RunTime returns the configured run time.
func (b *Base) RunTime() time.Duration { return b.cfg.runTime }

// LagRatio returns the stagger between submobjects.
func (b *Base) LagRatio() float64 { return b.cfg.lag }

// State returns the lifecycle state.
func (b *Base) State() State { return b.state }

// Alpha returns the last alpha applied.
func (b *Base) Alpha() float64 { return b.alpha }

// Introducer reports whether Begin adds the mobject to the stage.
func (b *Base) Introducer() bool { return b.cfg.introducer }

// Remover reports whether Finish removes the mobject from the stage.
func (b *Base) Remover() bool { return b.cfg.remover }

// Name returns the configured name, or the kind and the mobject's name.
func (b *Base) Name() string {
	if b.cfg.name != "" {
		return b.cfg.name
	}
	if b.mob == nil {
		return b.kind
	}
	return b.kind + "(" + b.mob.Name() + ")"
}

func (b *Base) String() string { return b.Name() }

// Start returns the snapshot taken at Begin, nil outside a playback.
func (b *Base) Start() *mobject.Mobject { return b.start }

// Begin prepares the animation, snapshots the mobject, suspends its
// updaters, registers introducers with stage and applies alpha 0.
// stage may be nil.
func (b *Base) Begin(stage Stage) error {
	if b.state != StateNotStarted {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyBegun, b.Name(), b.state)
	}
	if b.mob == nil && !b.optionalMobject {
		return fmt.Errorf("%w: %s", ErrNoMobject, b.Name())
	}
	if b.prepare != nil {
		if err := b.prepare(); err != nil {
			return fmt.Errorf("begin %s: %w", b.Name(), err)
		}
	}

	b.stage = stage
	if b.mob != nil {
		b.start = b.mob.Copy()
		b.family = b.mob.Family()
		b.startFamily = b.start.Family()
		b.withPoints = len(b.start.FamilyWithPoints())
		if b.cfg.suspend {
			b.mob.SuspendUpdating(true)
			b.suspended = true
		}
		if b.cfg.introducer && stage != nil {
			stage.Add(b.mob)
		}
	}
	b.state = StateBegun

	if err := b.apply(0); err != nil {
		err = errors.Join(err, b.unwind())
		return fmt.Errorf("begin %s: %w", b.Name(), err)
	}
	return nil
}

// unwind undoes a Begin whose first interpolation failed: the mobject gets
// its snapshot back, leaves the stage if it was introduced and the
// animation returns to NotStarted.
func (b *Base) unwind() error {
	var err error
	if b.mob != nil {
		err = b.restore()
		if b.cfg.introducer && b.stage != nil {
			b.stage.Remove(b.mob)
		}
	}
	b.release()
	b.stage = nil
	b.alpha = 0
	b.state = StateNotStarted
	return err
}

// Interpolate writes the mobject's state at alpha, which is clipped into
// [0,1].
func (b *Base) Interpolate(alpha float64) error {
	switch b.state {
	case StateNotStarted:
		return fmt.Errorf("%w: interpolate %s", ErrNotBegun, b.Name())
	case StateFinished:
		return fmt.Errorf("%w: interpolate %s", ErrFinished, b.Name())
	}
	if math.IsNaN(alpha) {
		return fmt.Errorf("%w: interpolate %s", ErrAlpha, b.Name())
	}
	b.state = StateInterpolating
	return b.apply(clip(alpha))
}

// Finish applies alpha 1, removes removers from the stage, resumes updaters
// and releases the snapshot. Finishing twice is a no-op.
func (b *Base) Finish() error {
	switch b.state {
	case StateNotStarted:
		return fmt.Errorf("%w: finish %s", ErrNotBegun, b.Name())
	case StateFinished:
		return nil
	}
	err := b.apply(1)
	if b.cfg.remover && b.stage != nil && b.mob != nil {
		b.stage.Remove(b.mob)
	}
	if b.cleanup != nil {
		err = errors.Join(err, b.cleanup())
	}
	b.release()
	return err
}

// UpdateMobjects runs the updaters of auxiliary mobjects such as a cached
// target copy.
func (b *Base) UpdateMobjects(dt float64) {
	for _, m := range b.aux {
		m.Update(dt)
	}
}

func (b *Base) release() {
	if b.suspended {
		b.mob.ResumeUpdating(true)
		b.suspended = false
	}
	b.start = nil
	b.family = nil
	b.startFamily = nil
	b.aux = nil
	b.state = StateFinished
}

// restore resets every family member to its snapshot.
func (b *Base) restore() error {
	for i, sub := range b.family {
		start := b.startFamily[i]
		if err := sub.InterpolateFrom(start, start, 0, nil); err != nil {
			return err
		}
	}
	return nil
}

func (b *Base) rate(alpha float64) float64 {
	if b.cfg.rate == nil {
		return alpha
	}
	return b.cfg.rate(alpha)
}

func (b *Base) apply(alpha float64) error {
	b.alpha = alpha
	if b.interpolate != nil {
		return b.interpolate(b.rate(alpha))
	}
	if b.submobject == nil || b.mob == nil {
		return nil
	}
	k := 0
	for i, sub := range b.family {
		start := b.startFamily[i]
		progress := b.rate(alpha)
		if start.HasPoints() {
			progress = b.rate(subAlpha(alpha, k, b.withPoints, b.cfg.lag))
			k++
		}
		if err := b.submobject(i, sub, start, progress); err != nil {
			return err
		}
	}
	return nil
}

// subAlpha staggers member i of n: each member plays over a window of
// width 1/((n-1)·lag+1), consecutive windows offset by lag of that width.
func subAlpha(alpha float64, i, n int, lag float64) float64 {
	if alpha >= 1 {
		return 1
	}
	full := float64(n-1)*lag + 1
	return clip(alpha*full - float64(i)*lag)
}
