package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// straightThreshold is the arc angle below which an arc path degenerates to a
// straight one.
const straightThreshold = 0.01

// A PathFunc moves a point from start to end as alpha goes from 0 to 1.
type PathFunc func(start, end Point, alpha float64) Point

// StraightPath moves points along the segment joining start and end.
func StraightPath(start, end Point, alpha float64) Point {
	return Lerp(start, end, alpha)
}

// ArcPath returns a PathFunc moving points along circular arcs spanning angle
// radians around axis. Positive angles turn counterclockwise when viewed from
// the positive end of axis.
func ArcPath(angle float64, axis Point) PathFunc {
	if math.Abs(angle) < straightThreshold {
		return StraightPath
	}
	if r3.Norm2(axis) == 0 {
		axis = Out
	}
	unit := r3.Unit(axis)
	return func(start, end Point, alpha float64) Point {
		if alpha <= 0 {
			return start
		}
		half := r3.Scale(0.5, r3.Sub(end, start))
		center := r3.Add(start, half)
		if angle != math.Pi {
			center = r3.Add(center, r3.Scale(1/math.Tan(angle/2), r3.Cross(unit, half)))
		}
		return r3.Add(center, r3.Rotate(r3.Sub(start, center), alpha*angle, unit))
	}
}
