// Package geom holds the point and curve arithmetic the mobject model is built
// on: 3D points, cubic Bezier segments stored as flat control-point buffers,
// partial-path slicing and the path functions used to move points between two
// states.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a position or direction in scene space.
type Point = r3.Vec

// Unit directions, scene space has y pointing up and z towards the viewer.
var (
	Origin = Point{}
	Right  = Point{X: 1}
	Left   = Point{X: -1}
	Up     = Point{Y: 1}
	Down   = Point{Y: -1}
	Out    = Point{Z: 1}
	In     = Point{Z: -1}
)

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Lerp interpolates between p and q.
// t=0 returns p and t=1 returns q exactly.
func Lerp(p, q Point, t float64) Point {
	s := 1 - t
	return Point{
		X: s*p.X + t*q.X,
		Y: s*p.Y + t*q.Y,
		Z: s*p.Z + t*q.Z,
	}
}

// LerpScalar interpolates between two scalars with the same exactness
// guarantees as Lerp.
func LerpScalar(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// LerpInto writes the pointwise interpolation of a and b into dst.
// All three slices must have the same length.
func LerpInto(dst, a, b []Point, t float64) {
	for i := range dst {
		dst[i] = Lerp(a[i], b[i], t)
	}
}

// RotateAbout rotates p by angle radians around the axis through about.
// A zero axis is treated as Out.
func RotateAbout(p Point, angle float64, axis, about Point) Point {
	if r3.Norm2(axis) == 0 {
		axis = Out
	}
	return r3.Add(r3.Rotate(r3.Sub(p, about), angle, axis), about)
}

// AlmostEqual reports whether p and q differ by less than eps on every axis.
func AlmostEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps && math.Abs(p.Z-q.Z) < eps
}

// Bounds returns the axis-aligned bounding box of points.
// ok is false when points is empty.
func Bounds(points []Point) (box r3.Box, ok bool) {
	if len(points) == 0 {
		return r3.Box{}, false
	}
	box.Min, box.Max = points[0], points[0]
	for _, p := range points[1:] {
		box = extend(box, p)
	}
	return box, true
}

// UnionBounds returns the smallest box containing a and b.
// Unlike r3.Box.Union it keeps flat boxes, which is what 2D scenes produce.
func UnionBounds(a, b r3.Box) r3.Box {
	return extend(extend(a, b.Min), b.Max)
}

func extend(box r3.Box, p Point) r3.Box {
	box.Min = Point{X: math.Min(box.Min.X, p.X), Y: math.Min(box.Min.Y, p.Y), Z: math.Min(box.Min.Z, p.Z)}
	box.Max = Point{X: math.Max(box.Max.X, p.X), Y: math.Max(box.Max.Y, p.Y), Z: math.Max(box.Max.Z, p.Z)}
	return box
}

// Centroid returns the arithmetic mean of points, or the origin when empty.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Origin
	}
	var sum Point
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}
