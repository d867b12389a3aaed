package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PointsPerCurve is the number of control points of one cubic segment in a
// point buffer: anchor, handle, handle, anchor.
const PointsPerCurve = 4

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are handles, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	a := mt2 * mt
	b := 3 * mt2 * t
	d := 3 * mt * t2
	e := t2 * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
		Z: a*c.P0.Z + b*c.P1.Z + d*c.P2.Z + e*c.P3.Z,
	}
}

// Split divides the curve at t using de Casteljau's algorithm.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := Lerp(c.P0, c.P1, t)
	p12 := Lerp(c.P1, c.P2, t)
	p23 := Lerp(c.P2, c.P3, t)
	p012 := Lerp(p01, p12, t)
	p123 := Lerp(p12, p23, t)
	mid := Lerp(p012, p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subsegment returns the portion of the curve from t0 to t1.
// The full range returns the curve unchanged, bit for bit.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	if t0 <= 0 && t1 >= 1 {
		return c
	}
	if t1 <= t0 {
		p := c.Eval(t0)
		return CubicBez{P0: p, P1: p, P2: p, P3: p}
	}
	left := c
	if t1 < 1 {
		left, _ = c.Split(t1)
	}
	if t0 <= 0 {
		return left
	}
	_, right := left.Split(t0 / t1)
	return right
}

// Length approximates the arc length by summing n chords.
func (c CubicBez) Length(n int) float64 {
	if n < 1 {
		n = 1
	}
	var length float64
	prev := c.P0
	for i := 1; i <= n; i++ {
		p := c.Eval(float64(i) / float64(n))
		length += r3.Norm(r3.Sub(p, prev))
		prev = p
	}
	return length
}

// Points appends the control points of c to dst.
func (c CubicBez) Points(dst []Point) []Point {
	return append(dst, c.P0, c.P1, c.P2, c.P3)
}

// Curves splits a point buffer into its cubic segments.
// Trailing points that do not complete a segment are ignored.
func Curves(points []Point) []CubicBez {
	n := len(points) / PointsPerCurve
	curves := make([]CubicBez, n)
	for i := range curves {
		q := points[i*PointsPerCurve:]
		curves[i] = CubicBez{P0: q[0], P1: q[1], P2: q[2], P3: q[3]}
	}
	return curves
}

// LineCurve returns the cubic segment tracing the straight line from a to b.
func LineCurve(a, b Point) CubicBez {
	return CubicBez{P0: a, P1: Lerp(a, b, 1.0/3), P2: Lerp(a, b, 2.0/3), P3: b}
}

// IntegerInterpolate maps alpha in [0,1] onto the n segments of a path and
// returns the segment index alpha falls in plus the residue inside it.
func IntegerInterpolate(n int, alpha float64) (index int, residue float64) {
	if alpha >= 1 {
		return n - 1, 1
	}
	if alpha <= 0 {
		return 0, 0
	}
	v := float64(n) * alpha
	index = int(math.Floor(v))
	return index, v - float64(index)
}

// PartialPath returns the control points of the sub-path spanning [a, b] of
// the path described by points, measured in curve-count parameter space.
// An empty buffer yields an empty buffer.
func PartialPath(points []Point, a, b float64) []Point {
	curves := Curves(points)
	if len(curves) == 0 {
		return nil
	}
	if a <= 0 && b >= 1 {
		out := make([]Point, len(curves)*PointsPerCurve)
		copy(out, points)
		return out
	}

	lower, lowerResidue := IntegerInterpolate(len(curves), a)
	upper, upperResidue := IntegerInterpolate(len(curves), b)
	if lower == upper {
		return curves[lower].Subsegment(lowerResidue, upperResidue).Points(nil)
	}
	if upper < lower {
		return curves[lower].Subsegment(lowerResidue, lowerResidue).Points(nil)
	}

	out := make([]Point, 0, (upper-lower+1)*PointsPerCurve)
	out = curves[lower].Subsegment(lowerResidue, 1).Points(out)
	for _, c := range curves[lower+1 : upper] {
		out = c.Points(out)
	}
	return curves[upper].Subsegment(0, upperResidue).Points(out)
}

// InsertCurves subdivides the path so it gains n extra segments while tracing
// the same shape. Segments are split as evenly as possible, earlier segments
// first. An empty path is returned unchanged.
func InsertCurves(points []Point, n int) []Point {
	curves := Curves(points)
	if n <= 0 || len(curves) == 0 {
		out := make([]Point, len(curves)*PointsPerCurve)
		copy(out, points)
		return out
	}

	current := len(curves)
	target := current + n
	splits := make([]int, current)
	for i := 0; i < target; i++ {
		splits[i*current/target]++
	}

	out := make([]Point, 0, target*PointsPerCurve)
	for i, c := range curves {
		k := splits[i]
		for j := 0; j < k; j++ {
			out = c.Subsegment(float64(j)/float64(k), float64(j+1)/float64(k)).Points(out)
		}
	}
	return out
}
