// Package scene drives animations frame by frame and hands each frame to
// renderers.
package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/matt-g-everett/mathanim/animation"
	"github.com/matt-g-everett/mathanim/internal/logging"
	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/stream"
)

// SetLogger configures logging for the scene driver and the packages it
// uses. nil silences it again.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Scene holds the mobjects on display and the clock.
type Scene struct {
	cfg       Config
	mobjects  []*mobject.Mobject
	renderer  stream.Renderer
	elapsed   float64
	nextFrame int
}

// New creates an empty scene rendering every frame to r. r may be nil.
func New(cfg Config, r stream.Renderer) *Scene {
	s := new(Scene)
	s.cfg = cfg.WithDefaults()
	s.renderer = r
	return s
}

// Config returns the scene configuration with defaults applied.
func (s *Scene) Config() Config { return s.cfg }

// Add puts mobjects on display, on top of those already there. Adding a
// mobject that is displayed already moves it to the top.
func (s *Scene) Add(mobs ...*mobject.Mobject) {
	for _, m := range mobs {
		if m == nil {
			continue
		}
		s.mobjects = slices.DeleteFunc(s.mobjects, func(x *mobject.Mobject) bool { return x == m })
		s.mobjects = append(s.mobjects, m)
	}
}

// Remove takes mobjects off display.
func (s *Scene) Remove(mobs ...*mobject.Mobject) {
	for _, m := range mobs {
		s.mobjects = slices.DeleteFunc(s.mobjects, func(x *mobject.Mobject) bool { return x == m })
	}
}

// Contains reports whether m is displayed at the top level.
func (s *Scene) Contains(m *mobject.Mobject) bool {
	return slices.Contains(s.mobjects, m)
}

// displays reports whether m is displayed, either at the top level or
// inside a displayed mobject.
func (s *Scene) displays(m *mobject.Mobject) bool {
	for _, root := range s.mobjects {
		if slices.Contains(root.Family(), m) {
			return true
		}
	}
	return false
}

// Mobjects returns the displayed mobjects, bottom first.
func (s *Scene) Mobjects() []*mobject.Mobject {
	return slices.Clone(s.mobjects)
}

// Time returns the scene clock.
func (s *Scene) Time() time.Duration {
	return time.Duration(s.elapsed * float64(time.Second))
}

// FrameIndex returns the index the next frame will carry.
func (s *Scene) FrameIndex() int { return s.nextFrame }

// Play runs the animations together. Several animations are wrapped in an
// animation.Group. Mobjects of leaf animations that do not introduce
// themselves are added first. Finish is always called once Begin has
// succeeded, including when ctx is cancelled.
func (s *Scene) Play(ctx context.Context, anims ...animation.Animation) (err error) {
	anims = slices.DeleteFunc(slices.Clone(anims), func(a animation.Animation) bool { return a == nil })
	if len(anims) == 0 {
		return nil
	}
	a := anims[0]
	if len(anims) > 1 {
		a = animation.NewGroup(anims)
	}
	log := logging.Logger()

	for _, leaf := range animation.Leaves(a) {
		if m := leaf.Mobject(); m != nil && !leaf.Introducer() && !s.displays(m) {
			s.Add(m)
		}
	}

	if err := a.Begin(s); err != nil {
		return fmt.Errorf("play %s: %w", a.Name(), err)
	}
	log.Debug("play begin", "animation", a.Name(), "run_time", a.RunTime(), "time", s.Time())
	defer func() {
		if ferr := a.Finish(); ferr != nil {
			err = errors.Join(err, fmt.Errorf("finish %s: %w", a.Name(), ferr))
		}
		log.Debug("play finish", "animation", a.Name(), "time", s.Time(), "frames", s.nextFrame)
	}()

	total := a.RunTime().Seconds()
	dt := 1 / s.cfg.FPS
	frames := int(math.Ceil(total*s.cfg.FPS - 1e-9))
	stopper, _ := a.(animation.Stopper)
	for i := 1; i <= frames; i++ {
		if err := ctx.Err(); err != nil {
			log.Info("play interrupted", "animation", a.Name(), "time", s.Time(), "err", err)
			return err
		}
		alpha := math.Min(float64(i)*dt/total, 1)
		if err := a.Interpolate(alpha); err != nil {
			return fmt.Errorf("play %s: %w", a.Name(), err)
		}
		a.UpdateMobjects(dt)
		s.update(dt)
		s.elapsed += dt
		if err := s.Render(); err != nil {
			return err
		}
		if stopper != nil && stopper.ShouldStop() {
			log.Info("play stopped early", "animation", a.Name(), "time", s.Time())
			break
		}
	}
	return nil
}

// Wait holds the scene for d, running updaters, or until stop reports true.
// stop may be nil.
func (s *Scene) Wait(ctx context.Context, d time.Duration, stop func() bool) error {
	return s.Play(ctx, animation.Wait(d, stop))
}

// Render captures the displayed mobjects and hands the frame to the
// renderer without advancing the clock.
func (s *Scene) Render() error {
	f := stream.Capture(s.nextFrame, s.elapsed, s.mobjects)
	s.nextFrame++
	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.RenderFrame(f); err != nil {
		logging.Logger().Warn("render failed", "frame", f.Index, "err", err)
		return fmt.Errorf("render frame %d: %w", f.Index, err)
	}
	return nil
}

func (s *Scene) update(dt float64) {
	for _, m := range s.mobjects {
		m.Update(dt)
	}
}
