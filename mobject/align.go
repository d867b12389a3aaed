package mobject

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matt-g-everett/mathanim/geom"
)

// AlignData restructures m and other so that their families pair up node by
// node with point buffers of equal length, which is what pointwise
// interpolation between them needs. Both mobjects may gain submobjects and
// curves; the traced shapes do not change.
func (m *Mobject) AlignData(other *Mobject) error {
	m.nullPointAlign(other)
	m.alignSubmobjects(other)
	if err := m.AlignPoints(other); err != nil {
		return err
	}
	for i, c := range m.children {
		if err := c.AlignData(other.children[i]); err != nil {
			return err
		}
	}
	return nil
}

// nullPointAlign moves the points of whichever side has them into a new
// submobject when the other side is a point-less group, so groups align
// with groups.
func (m *Mobject) nullPointAlign(other *Mobject) {
	for _, pair := range [2][2]*Mobject{{m, other}, {other, m}} {
		a, b := pair[0], pair[1]
		if !a.HasPoints() && len(a.children) > 0 && b.HasPoints() {
			b.pushPointsIntoSubmobject()
		}
	}
}

func (m *Mobject) pushPointsIntoSubmobject() {
	c := &Mobject{
		id:     uuid.New(),
		name:   m.name,
		kind:   m.kind,
		points: m.points,
		style:  m.style.Clone(),
		parent: m,
	}
	m.points = nil
	m.children = append([]*Mobject{c}, m.children...)
}

func (m *Mobject) alignSubmobjects(other *Mobject) {
	n1, n2 := len(m.children), len(other.children)
	switch {
	case n1 < n2:
		m.addSubmobjects(n2 - n1)
	case n2 < n1:
		other.addSubmobjects(n1 - n2)
	}
}

// addSubmobjects grows the child list by n, spreading invisible copies of
// existing children evenly, or degenerate points at the center when there
// are no children.
func (m *Mobject) addSubmobjects(n int) {
	current := len(m.children)
	if current == 0 {
		center := m.Center()
		for i := 0; i < n; i++ {
			p := m.pointMobject(center)
			p.parent = m
			m.children = append(m.children, p)
		}
		return
	}

	target := current + n
	splits := make([]int, current)
	for i := 0; i < target; i++ {
		splits[i*current/target]++
	}
	children := make([]*Mobject, 0, target)
	for i, c := range m.children {
		children = append(children, c)
		for j := 1; j < splits[i]; j++ {
			ghost := c.Copy()
			ghost.Fade(1)
			ghost.parent = m
			children = append(children, ghost)
		}
	}
	m.children = children
}

// pointMobject returns a single degenerate curve sitting at p with m's style.
func (m *Mobject) pointMobject(p geom.Point) *Mobject {
	pm := New(m.name)
	pm.kind = m.kind
	pm.style = m.style.Clone()
	if m.kind == KindPath {
		pm.points = []geom.Point{p, p, p, p}
	} else {
		pm.points = []geom.Point{p}
	}
	return pm
}

// AlignPoints makes the own point buffers of m and other the same length
// without changing the shapes they trace. Paths are aligned subpath by
// subpath by inserting curves, point clouds by repeating points.
func (m *Mobject) AlignPoints(other *Mobject) error {
	if !m.HasPoints() && !other.HasPoints() {
		return nil
	}
	if !m.HasPoints() {
		m.kind = other.kind
	} else if !other.HasPoints() {
		other.kind = m.kind
	}
	if m.kind != other.kind {
		return fmt.Errorf("%w: cannot align %s with %s", ErrCapability, m.kind, other.kind)
	}
	if len(m.points) == len(other.points) {
		return nil
	}
	if m.kind == KindPointCloud {
		n := max(len(m.points), len(other.points))
		m.points = stretchPoints(m.points, n, m.Center())
		other.points = stretchPoints(other.points, n, other.Center())
		return nil
	}

	for _, x := range []*Mobject{m, other} {
		if !x.HasPoints() {
			c := x.Center()
			x.points = []geom.Point{c, c, c, c}
		}
	}
	sub1, sub2 := subpaths(m.points), subpaths(other.points)
	n := max(len(sub1), len(sub2))
	var path1, path2 []geom.Point
	for i := 0; i < n; i++ {
		sp1, sp2 := nthSubpath(sub1, i), nthSubpath(sub2, i)
		diff := (len(sp2) - len(sp1)) / geom.PointsPerCurve
		if diff > 0 {
			sp1 = geom.InsertCurves(sp1, diff)
		} else if diff < 0 {
			sp2 = geom.InsertCurves(sp2, -diff)
		}
		path1 = append(path1, sp1...)
		path2 = append(path2, sp2...)
	}
	m.points, other.points = path1, path2
	return nil
}

// subpathTolerance decides when two consecutive curves are joined.
const subpathTolerance = 1e-6

// subpaths splits a path buffer wherever a curve does not start at the end
// of the previous one.
func subpaths(points []geom.Point) [][]geom.Point {
	var out [][]geom.Point
	start := 0
	for i := geom.PointsPerCurve; i < len(points); i += geom.PointsPerCurve {
		if r3.Norm(r3.Sub(points[i], points[i-1])) > subpathTolerance {
			out = append(out, points[start:i])
			start = i
		}
	}
	if start < len(points) {
		out = append(out, points[start:])
	}
	return out
}

// nthSubpath returns subpath n, or a null curve at the end of the last
// subpath when there are fewer than n+1.
func nthSubpath(paths [][]geom.Point, n int) []geom.Point {
	if n < len(paths) {
		return paths[n]
	}
	last := paths[len(paths)-1]
	p := last[len(last)-1]
	return []geom.Point{p, p, p, p}
}

// stretchPoints repeats points so the buffer has length n.
func stretchPoints(points []geom.Point, n int, fill geom.Point) []geom.Point {
	out := make([]geom.Point, n)
	if len(points) == 0 {
		for i := range out {
			out[i] = fill
		}
		return out
	}
	for i := range out {
		out[i] = points[i*len(points)/n]
	}
	return out
}
