package animation

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/ratefunc"
)

// Transform morphs a mobject into a target. Points travel along the
// configured path, styles blend.
type Transform struct {
	*Base

	build   func() (*mobject.Mobject, error)
	from    func() *mobject.Mobject
	replace bool

	// keep is the target as built, target and source are aligned copies.
	keep      *mobject.Mobject
	target    *mobject.Mobject
	source    *mobject.Mobject
	targetFam []*mobject.Mobject
	sourceFam []*mobject.Mobject
}

func newTransform(m *mobject.Mobject, kind string, build func() (*mobject.Mobject, error), cfg config) *Transform {
	t := &Transform{Base: newBase(m, kind, cfg), build: build}
	t.prepare = t.align
	t.submobject = t.interpolateSubmobject
	t.cleanup = t.cleanUp
	return t
}

// NewTransform morphs m into a copy of target. target itself is left
// untouched and is not added to the stage.
func NewTransform(m, target *mobject.Mobject, opts ...Option) *Transform {
	return newTransform(m, "Transform", staticTarget(target), leafConfig().with(opts))
}

// ReplacementTransform morphs m into target, then swaps m for target on the
// stage.
func ReplacementTransform(m, target *mobject.Mobject, opts ...Option) *Transform {
	t := newTransform(m, "ReplacementTransform", staticTarget(target), leafConfig().with(opts))
	t.replace = true
	return t
}

// ClockwiseTransform morphs m into target with points swinging clockwise.
func ClockwiseTransform(m, target *mobject.Mobject, opts ...Option) *Transform {
	opts = append([]Option{WithPathArc(-math.Pi)}, opts...)
	return newTransform(m, "ClockwiseTransform", staticTarget(target), leafConfig().with(opts))
}

// CounterclockwiseTransform morphs m into target with points swinging
// counterclockwise.
func CounterclockwiseTransform(m, target *mobject.Mobject, opts ...Option) *Transform {
	opts = append([]Option{WithPathArc(math.Pi)}, opts...)
	return newTransform(m, "CounterclockwiseTransform", staticTarget(target), leafConfig().with(opts))
}

// MoveToTarget morphs m into the target staged with GenerateTarget.
func MoveToTarget(m *mobject.Mobject, opts ...Option) *Transform {
	return newTransform(m, "MoveToTarget", func() (*mobject.Mobject, error) {
		if m == nil || m.Target() == nil {
			return nil, ErrNoTarget
		}
		return m.Target(), nil
	}, leafConfig().with(opts))
}

// ApplyFunction morphs m into fn(copy of m).
func ApplyFunction(m *mobject.Mobject, fn func(*mobject.Mobject) *mobject.Mobject, opts ...Option) *Transform {
	return newTransform(m, "ApplyFunction", func() (*mobject.Mobject, error) {
		target := fn(m.Copy())
		if target == nil {
			return nil, ErrNoTarget
		}
		return target, nil
	}, leafConfig().with(opts))
}

// ApplyPointwiseFunction morphs m into the image of its points under fn.
func ApplyPointwiseFunction(m *mobject.Mobject, fn func(geom.Point) geom.Point, opts ...Option) *Transform {
	return newTransform(m, "ApplyPointwiseFunction", copyWith(m, func(c *mobject.Mobject) {
		c.ApplyFunction(fn)
	}), leafConfig().with(opts))
}

// Shift moves m by v.
func Shift(m *mobject.Mobject, v geom.Point, opts ...Option) *Transform {
	return newTransform(m, "Shift", copyWith(m, func(c *mobject.Mobject) {
		c.Shift(v)
	}), leafConfig().with(opts))
}

// MoveTo moves m so its center lands on p.
func MoveTo(m *mobject.Mobject, p geom.Point, opts ...Option) *Transform {
	return newTransform(m, "MoveTo", copyWith(m, func(c *mobject.Mobject) {
		c.MoveTo(p)
	}), leafConfig().with(opts))
}

// ScaleInPlace scales m about its center.
func ScaleInPlace(m *mobject.Mobject, factor float64, opts ...Option) *Transform {
	return newTransform(m, "ScaleInPlace", copyWith(m, func(c *mobject.Mobject) {
		c.Scale(factor)
	}), leafConfig().with(opts))
}

// FadeToColor blends m's stroke and fill into c.
func FadeToColor(m *mobject.Mobject, c colorful.Color, opts ...Option) *Transform {
	return newTransform(m, "FadeToColor", copyWith(m, func(t *mobject.Mobject) {
		t.SetColor(c)
	}), leafConfig().with(opts))
}

// Indicate briefly enlarges m and tints it, then returns it to normal.
func Indicate(m *mobject.Mobject, factor float64, c colorful.Color, opts ...Option) *Transform {
	cfg := leafConfig()
	cfg.rate = ratefunc.ThereAndBack
	return newTransform(m, "Indicate", copyWith(m, func(t *mobject.Mobject) {
		t.Scale(factor).SetColor(c)
	}), cfg.with(opts))
}

func staticTarget(target *mobject.Mobject) func() (*mobject.Mobject, error) {
	return func() (*mobject.Mobject, error) {
		if target == nil {
			return nil, ErrNoTarget
		}
		return target, nil
	}
}

func copyWith(m *mobject.Mobject, edit func(*mobject.Mobject)) func() (*mobject.Mobject, error) {
	return func() (*mobject.Mobject, error) {
		c := m.Copy()
		edit(c)
		return c, nil
	}
}

// Target returns the aligned copy being morphed into, nil outside a
// playback.
func (t *Transform) Target() *mobject.Mobject { return t.target }

func (t *Transform) align() error {
	target, err := t.build()
	if err != nil {
		return err
	}
	t.target = target.Copy()
	if t.from != nil {
		t.source = t.from()
		if err := t.source.AlignData(t.target); err != nil {
			return err
		}
		t.sourceFam = t.source.Family()
		if len(t.sourceFam) != len(t.mob.Family()) {
			return fmt.Errorf("%w: source of %s does not match its structure", mobject.ErrPointCount, t.Name())
		}
	} else if err := t.mob.AlignData(t.target); err != nil {
		return err
	}
	t.targetFam = t.target.Family()
	t.aux = []*mobject.Mobject{t.target}
	if t.source != nil {
		t.aux = append(t.aux, t.source)
	}
	t.keep = target
	return nil
}

func (t *Transform) interpolateSubmobject(i int, sub, start *mobject.Mobject, progress float64) error {
	from := start
	if t.sourceFam != nil {
		from = t.sourceFam[i]
	}
	return sub.InterpolateFrom(from, t.targetFam[i], progress, t.cfg.path)
}

func (t *Transform) cleanUp() error {
	if t.replace && t.stage != nil {
		t.stage.Remove(t.mob)
		t.stage.Add(t.keep)
	}
	t.target, t.source = nil, nil
	t.targetFam, t.sourceFam = nil, nil
	return nil
}
