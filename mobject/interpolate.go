package mobject

import (
	"fmt"

	"github.com/matt-g-everett/mathanim/geom"
)

// InterpolateFrom overwrites m's own points and style with the blend of start
// and end at alpha. start and end must have been aligned (see AlignData).
// A nil path moves points in straight lines. Children are not visited.
func (m *Mobject) InterpolateFrom(start, end *Mobject, alpha float64, path geom.PathFunc) error {
	if len(start.points) != len(end.points) {
		return fmt.Errorf("%w: cannot interpolate %d points into %d (%s)",
			ErrPointCount, len(start.points), len(end.points), m.name)
	}
	if path == nil {
		path = geom.StraightPath
	}
	if len(m.points) != len(start.points) {
		m.points = make([]geom.Point, len(start.points))
	}
	for i := range m.points {
		m.points[i] = path(start.points[i], end.points[i], alpha)
	}
	m.style = InterpolateStyle(start.style, end.style, alpha)
	return nil
}

// BecomePartial sets m's own points to the portion of src's path spanning
// [a, b]. An empty source yields an empty buffer.
func (m *Mobject) BecomePartial(src *Mobject, a, b float64) error {
	if src.kind != KindPath {
		return fmt.Errorf("%w: partial reveal of %s %s", ErrCapability, src.kind, src.name)
	}
	m.points = geom.PartialPath(src.points, a, b)
	return nil
}
