package stream

import (
	"errors"
)

type sink struct {
	renderer Renderer
	every    int
}

// Controller fans frames out to several renderers, each optionally
// receiving only every Nth frame.
type Controller struct {
	sinks []sink
}

// NewController creates a Controller sending every frame to each renderer.
func NewController(renderers ...Renderer) *Controller {
	c := new(Controller)
	for _, r := range renderers {
		c.Add(r, 1)
	}
	return c
}

// Add registers r for every frame whose index is a multiple of every.
// every below 1 means every frame.
func (c *Controller) Add(r Renderer, every int) {
	if r == nil {
		return
	}
	c.sinks = append(c.sinks, sink{renderer: r, every: max(every, 1)})
}

// Len returns the number of registered renderers.
func (c *Controller) Len() int { return len(c.sinks) }

// RenderFrame hands f to every due renderer in registration order. All
// renderers are tried; their errors are joined.
func (c *Controller) RenderFrame(f *Frame) error {
	var err error
	for _, s := range c.sinks {
		if f.Index%s.every != 0 {
			continue
		}
		err = errors.Join(err, s.renderer.RenderFrame(f))
	}
	return err
}
