package animation

import "errors"

var (
	// ErrNotBegun is returned when an animation is used before Begin.
	ErrNotBegun = errors.New("animation has not begun")
	// ErrAlreadyBegun is returned when Begin is called a second time.
	ErrAlreadyBegun = errors.New("animation already begun")
	// ErrFinished is returned when a finished animation is interpolated.
	ErrFinished = errors.New("animation already finished")
	// ErrNoMobject is returned when a leaf animation is bound to nil.
	ErrNoMobject = errors.New("animation has no mobject")
	// ErrNoTarget is returned when a transform has nothing to transform into.
	ErrNoTarget = errors.New("animation has no target")
	// ErrAlpha is returned for an alpha that is not a number.
	ErrAlpha = errors.New("alpha is not a number")
)
