package animation

import (
	"math"
	"time"

	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/ratefunc"
)

// DefaultRunTime is the run time of a leaf animation.
const DefaultRunTime = time.Second

// DefaultLagRatio is the stagger used by LaggedStart.
const DefaultLagRatio = 0.05

type config struct {
	name       string
	runTime    time.Duration
	runTimeSet bool
	rate       ratefunc.Func
	lag        float64
	introducer bool
	remover    bool
	suspend    bool
	path       geom.PathFunc
	shift      geom.Point
	scale      float64
}

func leafConfig() config {
	return config{
		runTime: DefaultRunTime,
		rate:    ratefunc.Smooth,
		suspend: true,
		path:    geom.StraightPath,
		scale:   1,
	}
}

func (c config) with(opts []Option) config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// An Option configures an animation.
type Option func(*config)

// WithName overrides the generated name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithRunTime sets the run time. Negative values mean zero.
func WithRunTime(d time.Duration) Option {
	return func(c *config) {
		c.runTime = max(d, 0)
		c.runTimeSet = true
	}
}

// WithRateFunc sets the rate function. nil leaves alpha unchanged.
func WithRateFunc(f ratefunc.Func) Option {
	return func(c *config) { c.rate = f }
}

// WithLagRatio sets the stagger between submobjects, or between children of
// a composite. The ratio is clipped into [0,1].
func WithLagRatio(lag float64) Option {
	return func(c *config) {
		if math.IsNaN(lag) {
			lag = 0
		}
		c.lag = clip(lag)
	}
}

// WithIntroducer makes the animation add its mobject to the stage at Begin.
func WithIntroducer(on bool) Option {
	return func(c *config) { c.introducer = on }
}

// WithRemover makes the animation remove its mobject from the stage at
// Finish.
func WithRemover(on bool) Option {
	return func(c *config) { c.remover = on }
}

// WithoutSuspendingUpdaters keeps the mobject's updaters running while the
// animation plays.
func WithoutSuspendingUpdaters() Option {
	return func(c *config) { c.suspend = false }
}

// WithPath sets how points travel during a transform.
func WithPath(path geom.PathFunc) Option {
	return func(c *config) {
		if path == nil {
			path = geom.StraightPath
		}
		c.path = path
	}
}

// WithPathArc makes points travel along arcs of angle radians around Out.
func WithPathArc(angle float64) Option {
	return WithPath(geom.ArcPath(angle, geom.Out))
}

// WithShift sets the offset a fade travels.
func WithShift(v geom.Point) Option {
	return func(c *config) { c.shift = v }
}

// WithScale sets the scale a fade starts from or ends at.
func WithScale(f float64) Option {
	return func(c *config) { c.scale = f }
}
