package animation

import (
	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
)

// Rotating turns a mobject by integrating the angle, so points stay on
// their circles instead of cutting across them.
type Rotating struct {
	*Base
	angle float64
	axis  geom.Point
	about *geom.Point
}

// Rotate turns m by angle radians around axis through its center.
func Rotate(m *mobject.Mobject, angle float64, axis geom.Point, opts ...Option) *Rotating {
	return newRotating(m, angle, axis, nil, opts)
}

// RotateAbout turns m by angle radians around axis through about.
func RotateAbout(m *mobject.Mobject, angle float64, axis, about geom.Point, opts ...Option) *Rotating {
	return newRotating(m, angle, axis, &about, opts)
}

func newRotating(m *mobject.Mobject, angle float64, axis geom.Point, about *geom.Point, opts []Option) *Rotating {
	r := &Rotating{Base: newBase(m, "Rotate", leafConfig().with(opts)), angle: angle, axis: axis, about: about}
	r.interpolate = r.rotate
	return r
}

func (r *Rotating) rotate(progress float64) error {
	about := r.start.Center()
	if r.about != nil {
		about = *r.about
	}
	if err := r.restore(); err != nil {
		return err
	}
	r.mob.RotateAbout(r.angle*progress, r.axis, about)
	return nil
}
