// Package animation drives mobjects from a starting state to a target state.
//
// Every animation follows the same lifecycle: Begin once, Interpolate any
// number of times with alpha in [0,1], then Finish. Interpolation is always
// computed from the snapshot taken at Begin, so seeking to the same alpha
// twice gives the same state. Composites (Group, Succession and the lagged
// helpers) re-time their children inside their own [0,1].
//
// A mobject must not be bound to two running animations at once.
package animation

import (
	"time"

	"github.com/matt-g-everett/mathanim/mobject"
)

// State is a step of the animation lifecycle.
type State int

// Lifecycle states.
const (
	StateNotStarted State = iota
	StateBegun
	StateInterpolating
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateBegun:
		return "begun"
	case StateInterpolating:
		return "interpolating"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Stage is the scene collaborator that introducers add their mobject to and
// removers take it away from.
type Stage interface {
	Add(mobs ...*mobject.Mobject)
	Remove(mobs ...*mobject.Mobject)
}

// Animation is the lifecycle every animation implements.
type Animation interface {
	// Begin snapshots the bound mobject and applies alpha 0.
	Begin(stage Stage) error
	// Interpolate writes the state at alpha.
	Interpolate(alpha float64) error
	// Finish applies alpha 1 and releases the snapshot. It is idempotent.
	Finish() error
	// UpdateMobjects refreshes auxiliary mobjects, never the bound one.
	UpdateMobjects(dt float64)

	Mobject() *mobject.Mobject
	RunTime() time.Duration
	Name() string
	State() State
	// Alpha is the last alpha applied.
	Alpha() float64
	Introducer() bool
	Remover() bool
}

// Composite is an animation made of child animations.
type Composite interface {
	Animation
	Children() []Animation
}

// Stopper is implemented by animations that may end before their run time.
type Stopper interface {
	ShouldStop() bool
}

// Leaves returns the leaf animations under a, in order.
func Leaves(a Animation) []Animation {
	c, ok := a.(Composite)
	if !ok {
		return []Animation{a}
	}
	var out []Animation
	for _, child := range c.Children() {
		out = append(out, Leaves(child)...)
	}
	return out
}

func seconds(d time.Duration) float64 {
	return d.Seconds()
}

func clip(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
