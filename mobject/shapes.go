package mobject

import (
	"math"

	"github.com/matt-g-everett/mathanim/geom"
)

// Arc segments per full turn.
const arcSegmentsPerTurn = 8

// Point creates a degenerate path sitting at p.
func Point(p geom.Point) *Mobject {
	m := New("Point")
	m.points = []geom.Point{p, p, p, p}
	return m
}

// Line creates a straight segment from a to b.
func Line(a, b geom.Point) *Mobject {
	m := New("Line")
	m.points = geom.LineCurve(a, b).Points(nil)
	return m
}

// Polygon creates a closed outline through vertices.
func Polygon(vertices ...geom.Point) *Mobject {
	m := New("Polygon")
	for i, v := range vertices {
		m.points = geom.LineCurve(v, vertices[(i+1)%len(vertices)]).Points(m.points)
	}
	return m
}

// Rectangle creates a width by height rectangle centered on the origin.
func Rectangle(width, height float64) *Mobject {
	w, h := width/2, height/2
	m := Polygon(geom.Pt(w, h, 0), geom.Pt(-w, h, 0), geom.Pt(-w, -h, 0), geom.Pt(w, -h, 0))
	m.name = "Rectangle"
	return m
}

// Square creates a square of the given side centered on the origin.
func Square(side float64) *Mobject {
	m := Rectangle(side, side)
	m.name = "Square"
	return m
}

// Arc creates a circular arc of radius around center, starting at angle
// start and sweeping angle radians counterclockwise.
func Arc(center geom.Point, radius, start, angle float64) *Mobject {
	m := New("Arc")
	n := int(math.Ceil(math.Abs(angle) / (2 * math.Pi) * arcSegmentsPerTurn))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	k := 4.0 / 3 * math.Tan(step/4) * radius
	at := func(theta float64) (geom.Point, geom.Point) {
		sin, cos := math.Sincos(theta)
		p := geom.Pt(center.X+radius*cos, center.Y+radius*sin, center.Z)
		tangent := geom.Pt(-sin, cos, 0)
		return p, tangent
	}
	for i := 0; i < n; i++ {
		t0 := start + float64(i)*step
		p0, d0 := at(t0)
		p3, d3 := at(t0 + step)
		m.points = append(m.points,
			p0,
			geom.Pt(p0.X+k*d0.X, p0.Y+k*d0.Y, p0.Z),
			geom.Pt(p3.X-k*d3.X, p3.Y-k*d3.Y, p3.Z),
			p3,
		)
	}
	return m
}

// Circle creates a circle of radius centered on the origin.
func Circle(radius float64) *Mobject {
	m := Arc(geom.Origin, radius, 0, 2*math.Pi)
	m.name = "Circle"
	return m
}

// Dot creates a small filled circle at center.
func Dot(center geom.Point, radius float64) *Mobject {
	m := Arc(center, radius, 0, 2*math.Pi)
	m.name = "Dot"
	m.style.FillOpacity = 1
	m.style.StrokeWidth = 0
	return m
}
