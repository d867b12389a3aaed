package animation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/ratefunc"
)

// window is the slice of a composite's [0,1] given to one child.
type window struct {
	start, end float64
}

// local maps composite progress g into the child's own alpha.
func (w window) local(g float64) float64 {
	if w.end <= w.start {
		if g >= w.start {
			return 1
		}
		return 0
	}
	if g >= w.end {
		return 1
	}
	return clip((g - w.start) / (w.end - w.start))
}

// windows lays children out on a natural timeline where child i+1 starts
// lag of the way into child i, then normalises it onto [0,1]. A lag of 0
// starts every child together, a lag of 1 plays them back to back.
func windows(runTimes []time.Duration, lag float64) []window {
	out := make([]window, len(runTimes))
	var start, total float64
	for i, d := range runTimes {
		r := seconds(d)
		out[i] = window{start, start + r}
		total = math.Max(total, start+r)
		start += lag * r
	}
	if total == 0 {
		return out
	}
	for i := range out {
		out[i].start /= total
		out[i].end /= total
	}
	return out
}

// composite holds what Group and Succession share.
type composite struct {
	kind     string
	cfg      config
	children []Animation
	windows  []window
	state    State
	stage    Stage
	alpha    float64
}

func newComposite(kind string, children []Animation, cfg config) composite {
	kids := make([]Animation, 0, len(children))
	for _, c := range children {
		if c != nil {
			kids = append(kids, c)
		}
	}
	runTimes := make([]time.Duration, len(kids))
	for i, c := range kids {
		runTimes[i] = c.RunTime()
	}
	return composite{
		kind:     kind,
		cfg:      cfg,
		children: kids,
		windows:  windows(runTimes, cfg.lag),
	}
}

// Children returns the child animations in order.
func (c *composite) Children() []Animation {
	return append([]Animation(nil), c.children...)
}

// Mobject is nil for composites.
func (c *composite) Mobject() *mobject.Mobject { return nil }

// RunTime returns the composite's run time.
func (c *composite) RunTime() time.Duration { return c.cfg.runTime }

// LagRatio returns the stagger between children.
func (c *composite) LagRatio() float64 { return c.cfg.lag }

// State returns the lifecycle state.
func (c *composite) State() State { return c.state }

// Alpha returns the last alpha applied.
func (c *composite) Alpha() float64 { return c.alpha }

// Introducer is false for composites; children introduce themselves.
func (c *composite) Introducer() bool { return false }

// Remover is false for composites; children remove themselves.
func (c *composite) Remover() bool { return false }

// Name returns the configured name or a summary of the children.
func (c *composite) Name() string {
	if c.cfg.name != "" {
		return c.cfg.name
	}
	names := make([]string, len(c.children))
	for i, child := range c.children {
		names[i] = child.Name()
	}
	return c.kind + "(" + strings.Join(names, ", ") + ")"
}

func (c *composite) String() string { return c.Name() }

// UpdateMobjects forwards to every child.
func (c *composite) UpdateMobjects(dt float64) {
	for _, child := range c.children {
		child.UpdateMobjects(dt)
	}
}

func (c *composite) check(op string, alpha float64) error {
	switch c.state {
	case StateNotStarted:
		return fmt.Errorf("%w: %s %s", ErrNotBegun, op, c.Name())
	case StateFinished:
		return fmt.Errorf("%w: %s %s", ErrFinished, op, c.Name())
	}
	if math.IsNaN(alpha) {
		return fmt.Errorf("%w: %s %s", ErrAlpha, op, c.Name())
	}
	return nil
}

func (c *composite) progress(alpha float64) float64 {
	if c.cfg.rate == nil {
		return alpha
	}
	return c.cfg.rate(alpha)
}

// abort finishes every child that has begun and joins their errors to err.
func (c *composite) abort(err error) error {
	for _, child := range c.children {
		if s := child.State(); s == StateBegun || s == StateInterpolating {
			err = errors.Join(err, child.Finish())
		}
	}
	c.state = StateFinished
	return err
}

func compositeConfig(children []Animation, total func([]Animation) time.Duration, defaults config, opts []Option) config {
	cfg := defaults.with(opts)
	if !cfg.runTimeSet {
		cfg.runTime = total(children)
	}
	return cfg
}

func groupConfig() config {
	return config{rate: ratefunc.Linear}
}

func maxRunTime(children []Animation) time.Duration {
	var d time.Duration
	for _, c := range children {
		if c != nil {
			d = max(d, c.RunTime())
		}
	}
	return d
}

func sumRunTime(children []Animation) time.Duration {
	var d time.Duration
	for _, c := range children {
		if c != nil {
			d += c.RunTime()
		}
	}
	return d
}

// Group plays its children in parallel. With a lag ratio the children are
// staggered inside the group's run time, which stays the longest child's
// run time unless set explicitly.
type Group struct {
	composite
}

// NewGroup plays children together. The group's rate function, Linear by
// default, reshapes the alpha shared by all children.
func NewGroup(children []Animation, opts ...Option) *Group {
	cfg := compositeConfig(children, maxRunTime, groupConfig(), opts)
	return &Group{composite: newComposite("Group", children, cfg)}
}

// LaggedStart plays children with a DefaultLagRatio stagger.
func LaggedStart(children []Animation, opts ...Option) *Group {
	defaults := groupConfig()
	defaults.lag = DefaultLagRatio
	cfg := compositeConfig(children, maxRunTime, defaults, opts)
	return &Group{composite: newComposite("LaggedStart", children, cfg)}
}

// Begin begins every child in order. If one fails, the children already
// begun are finished and all errors are returned together.
func (g *Group) Begin(stage Stage) error {
	if g.state != StateNotStarted {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyBegun, g.Name(), g.state)
	}
	g.stage = stage
	for _, child := range g.children {
		if err := child.Begin(stage); err != nil {
			return g.abort(fmt.Errorf("begin %s: %w", g.Name(), err))
		}
	}
	g.state = StateBegun
	if err := g.apply(0); err != nil {
		return g.abort(err)
	}
	return nil
}

// Interpolate gives every child its local alpha, in declared order. If a
// child fails, every child is finished and the group ends.
func (g *Group) Interpolate(alpha float64) error {
	if err := g.check("interpolate", alpha); err != nil {
		return err
	}
	g.state = StateInterpolating
	if err := g.apply(clip(alpha)); err != nil {
		return g.abort(fmt.Errorf("interpolate %s: %w", g.Name(), err))
	}
	return nil
}

func (g *Group) apply(alpha float64) error {
	g.alpha = alpha
	p := g.progress(alpha)
	for i, child := range g.children {
		if err := child.Interpolate(g.windows[i].local(p)); err != nil {
			return err
		}
	}
	return nil
}

// Finish finishes every child in order. It is idempotent.
func (g *Group) Finish() error {
	switch g.state {
	case StateNotStarted:
		return fmt.Errorf("%w: finish %s", ErrNotBegun, g.Name())
	case StateFinished:
		return nil
	}
	g.alpha = 1
	var err error
	for _, child := range g.children {
		err = errors.Join(err, child.Finish())
	}
	g.state = StateFinished
	return err
}

// ShouldStop reports whether every child that can stop early wants to. A
// group without such children never stops early.
func (g *Group) ShouldStop() bool {
	found := false
	for _, child := range g.children {
		s, ok := child.(Stopper)
		if !ok {
			continue
		}
		if !s.ShouldStop() {
			return false
		}
		found = true
	}
	return found
}

// LaggedMap builds one animation per submobject of m from args(sub) and
// plays them as a LaggedStart.
func LaggedMap[A any](m *mobject.Mobject, args func(sub *mobject.Mobject) A, factory func(A) Animation, opts ...Option) *Group {
	var children []Animation
	if m != nil {
		for _, sub := range m.Submobjects() {
			children = append(children, factory(args(sub)))
		}
	}
	g := LaggedStart(children, opts...)
	g.kind = "LaggedMap"
	return g
}

// LaggedStartMapRunTime is the default run time of LaggedStartMap.
const LaggedStartMapRunTime = 2 * time.Second

// LaggedStartMap applies factory to each submobject of m and plays the
// results as a LaggedStart lasting LaggedStartMapRunTime by default.
func LaggedStartMap(m *mobject.Mobject, factory func(*mobject.Mobject) Animation, opts ...Option) *Group {
	opts = append([]Option{WithRunTime(LaggedStartMapRunTime)}, opts...)
	g := LaggedMap(m, func(sub *mobject.Mobject) *mobject.Mobject { return sub }, factory, opts...)
	g.kind = "LaggedStartMap"
	return g
}
