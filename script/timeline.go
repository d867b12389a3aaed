package script

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/animation"
	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/ratefunc"
)

func (s *Script) animation(step Step, skip func() bool) (animation.Animation, error) {
	if step.Wait != nil {
		if step.Play != "" {
			return nil, fmt.Errorf("%w: both play and wait given", ErrInvalid)
		}
		return s.wait(step, skip)
	}
	opts, err := options(step)
	if err != nil {
		return nil, err
	}

	switch step.Play {
	case "group", "succession", "lagged_start":
		children := make([]animation.Animation, len(step.Steps))
		for i, child := range step.Steps {
			if children[i], err = s.animation(child, skip); err != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
		}
		switch step.Play {
		case "group":
			return animation.NewGroup(children, opts...), nil
		case "succession":
			return animation.NewSuccession(children, opts...), nil
		}
		return animation.LaggedStart(children, opts...), nil
	case "lagged_start_map":
		m, err := s.target(step)
		if err != nil {
			return nil, err
		}
		each := step
		each.Play, each.Each = step.Each, ""
		each.RunTime, each.RateFunc, each.LagRatio = nil, "", nil
		if _, err := s.leaf(each, m, nil); err != nil {
			return nil, fmt.Errorf("each: %w", err)
		}
		built := make(map[*mobject.Mobject]animation.Animation)
		for i, sub := range m.Submobjects() {
			a, err := s.leaf(each, sub, nil)
			if err != nil {
				return nil, fmt.Errorf("each[%d]: %w", i, err)
			}
			built[sub] = a
		}
		return animation.LaggedStartMap(m, func(sub *mobject.Mobject) animation.Animation {
			return built[sub]
		}, opts...), nil
	case "":
		return nil, fmt.Errorf("%w: neither play nor wait given", ErrInvalid)
	}

	m, err := s.target(step)
	if err != nil {
		return nil, err
	}
	return s.leaf(step, m, opts)
}

func (s *Script) wait(step Step, skip func() bool) (animation.Animation, error) {
	if *step.Wait < 0 || math.IsNaN(*step.Wait) {
		return nil, fmt.Errorf("%w: wait %v", ErrInvalid, *step.Wait)
	}
	var stop func() bool
	switch step.Until {
	case "":
	case "skip":
		stop = skip
	default:
		return nil, fmt.Errorf("%w: wait until %q", ErrInvalid, step.Until)
	}
	return animation.Wait(duration(*step.Wait), stop), nil
}

// leaf builds a single-mobject animation of the kind step.Play on m.
func (s *Script) leaf(step Step, m *mobject.Mobject, opts []animation.Option) (animation.Animation, error) {
	p := step.Params
	vector := func() (geom.Point, error) {
		if step.Vector == nil {
			return geom.Point{}, fmt.Errorf("%w: %s needs a vector", ErrInvalid, step.Play)
		}
		return parsePoint(step.Vector)
	}
	color := func(def string) (colorful.Color, error) {
		name := step.Color
		if name == "" {
			name = def
		}
		if name == "" {
			return colorful.Color{}, fmt.Errorf("%w: %s needs a color", ErrInvalid, step.Play)
		}
		return parseColor(name)
	}

	switch step.Play {
	case "create":
		return animation.Create(m, opts...), nil
	case "uncreate":
		return animation.Uncreate(m, opts...), nil
	case "show_passing_flash":
		return animation.ShowPassingFlash(m, param(p, "width", animation.DefaultFlashWidth), opts...), nil
	case "fade_in", "fade_out":
		if step.Vector != nil {
			v, err := vector()
			if err != nil {
				return nil, err
			}
			opts = append(opts, animation.WithShift(v))
		}
		if f, ok := p["scale"]; ok {
			opts = append(opts, animation.WithScale(f))
		}
		if step.Play == "fade_in" {
			return animation.FadeIn(m, opts...), nil
		}
		return animation.FadeOut(m, opts...), nil
	case "transform", "replacement_transform", "clockwise_transform", "counterclockwise_transform":
		to, ok := s.byName[step.To]
		if !ok {
			return nil, fmt.Errorf("%w: to %q", ErrUnknownMobject, step.To)
		}
		switch step.Play {
		case "replacement_transform":
			return animation.ReplacementTransform(m, to, opts...), nil
		case "clockwise_transform":
			return animation.ClockwiseTransform(m, to, opts...), nil
		case "counterclockwise_transform":
			return animation.CounterclockwiseTransform(m, to, opts...), nil
		}
		return animation.NewTransform(m, to, opts...), nil
	case "apply":
		var shift geom.Point
		if step.Vector != nil {
			v, err := vector()
			if err != nil {
				return nil, err
			}
			shift = v
		}
		var tint *colorful.Color
		if step.Color != "" {
			c, err := color("")
			if err != nil {
				return nil, err
			}
			tint = &c
		}
		return animation.ApplyFunction(m, func(c *mobject.Mobject) *mobject.Mobject {
			c.Scale(param(p, "scale", 1)).Rotate(param(p, "angle", 0), geom.Out).Shift(shift)
			if tint != nil {
				c.SetColor(*tint)
			}
			return c
		}, opts...), nil
	case "shift", "move_to":
		v, err := vector()
		if err != nil {
			return nil, err
		}
		if step.Play == "shift" {
			return animation.Shift(m, v, opts...), nil
		}
		return animation.MoveTo(m, v, opts...), nil
	case "scale":
		return animation.ScaleInPlace(m, param(p, "factor", 2), opts...), nil
	case "rotate":
		if step.Vector != nil {
			about, err := vector()
			if err != nil {
				return nil, err
			}
			return animation.RotateAbout(m, param(p, "angle", math.Pi), geom.Out, about, opts...), nil
		}
		return animation.Rotate(m, param(p, "angle", math.Pi), geom.Out, opts...), nil
	case "fade_to_color":
		c, err := color("")
		if err != nil {
			return nil, err
		}
		return animation.FadeToColor(m, c, opts...), nil
	case "indicate":
		c, err := color("yellow")
		if err != nil {
			return nil, err
		}
		return animation.Indicate(m, param(p, "factor", 1.2), c, opts...), nil
	case "add":
		return animation.Add(m, opts...), nil
	case "remove":
		return animation.Remove(m, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, step.Play)
}

func (s *Script) target(step Step) (*mobject.Mobject, error) {
	if step.Target == "" {
		return nil, fmt.Errorf("%w: %s needs a target", ErrInvalid, step.Play)
	}
	m, ok := s.byName[step.Target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMobject, step.Target)
	}
	return m, nil
}

func options(step Step) ([]animation.Option, error) {
	var opts []animation.Option
	if step.RunTime != nil {
		if *step.RunTime < 0 || math.IsNaN(*step.RunTime) {
			return nil, fmt.Errorf("%w: run_time %v", ErrInvalid, *step.RunTime)
		}
		opts = append(opts, animation.WithRunTime(duration(*step.RunTime)))
	}
	if step.RateFunc != "" {
		f, err := ratefunc.Lookup(step.RateFunc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, animation.WithRateFunc(f))
	}
	if step.LagRatio != nil {
		opts = append(opts, animation.WithLagRatio(*step.LagRatio))
	}
	return opts, nil
}

func duration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
