// Package mobject implements the renderable object model: a tree of nodes
// each owning a buffer of cubic Bezier control points and a Style.
//
// A Mobject is owned by at most one parent. Mobjects are not safe for
// concurrent use; the animation core drives them from a single goroutine.
// Binding one mobject to two running animations at once is a caller error
// and is not detected.
package mobject

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matt-g-everett/mathanim/geom"
)

// Kind tags what a mobject's point buffer means, and therefore which
// operations it supports.
type Kind int

const (
	// KindPath buffers are sequences of cubic Bezier segments, four control
	// points each. Groups are path mobjects without points of their own.
	KindPath Kind = iota
	// KindPointCloud buffers are free standing points with no curve structure.
	KindPointCloud
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindPointCloud:
		return "points"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Mobject is one node of the scene tree.
type Mobject struct {
	id   uuid.UUID
	name string
	kind Kind

	points []geom.Point
	style  Style

	parent   *Mobject
	children []*Mobject

	updaters      []updater
	nextUpdaterID UpdaterID
	suspended     bool

	target *Mobject
}

// New creates an empty path mobject with the default style.
func New(name string) *Mobject {
	m := new(Mobject)
	m.id = uuid.New()
	m.name = name
	m.kind = KindPath
	m.style = DefaultStyle()
	return m
}

// NewPath creates a path mobject from a control point buffer.
func NewPath(name string, points []geom.Point) (*Mobject, error) {
	m := New(name)
	if err := m.SetPoints(points); err != nil {
		return nil, err
	}
	return m, nil
}

// NewGroup creates a point-less mobject holding children.
func NewGroup(name string, children ...*Mobject) (*Mobject, error) {
	m := New(name)
	if err := m.Add(children...); err != nil {
		return nil, err
	}
	return m, nil
}

// NewPointCloud creates a mobject made of free standing points.
func NewPointCloud(name string, points []geom.Point) *Mobject {
	m := New(name)
	m.kind = KindPointCloud
	m.points = append([]geom.Point(nil), points...)
	return m
}

// ID uniquely identifies the mobject. Copies get new IDs.
func (m *Mobject) ID() uuid.UUID { return m.id }

// Name returns the mobject's name.
func (m *Mobject) Name() string { return m.name }

// SetName renames the mobject.
func (m *Mobject) SetName(name string) { m.name = name }

// Kind returns the point buffer kind.
func (m *Mobject) Kind() Kind { return m.kind }

func (m *Mobject) String() string {
	return fmt.Sprintf("%s(%s, %d points, %d children)", m.name, m.kind, len(m.points), len(m.children))
}

// SupportsPartial reports whether every member of the family can be sliced
// into a sub-path.
func (m *Mobject) SupportsPartial() bool {
	for _, f := range m.Family() {
		if f.kind != KindPath {
			return false
		}
	}
	return true
}

// Points returns a copy of the mobject's own control points.
func (m *Mobject) Points() []geom.Point {
	return append([]geom.Point(nil), m.points...)
}

// PointCount returns the number of the mobject's own control points.
func (m *Mobject) PointCount() int { return len(m.points) }

// HasPoints reports whether the mobject has points of its own.
func (m *Mobject) HasPoints() bool { return len(m.points) > 0 }

// CurveCount returns the number of cubic segments of a path mobject.
func (m *Mobject) CurveCount() int {
	if m.kind != KindPath {
		return 0
	}
	return len(m.points) / geom.PointsPerCurve
}

// SetPoints replaces the point buffer with a copy of points.
func (m *Mobject) SetPoints(points []geom.Point) error {
	if m.kind == KindPath && len(points)%geom.PointsPerCurve != 0 {
		return fmt.Errorf("%w: %d points is not a whole number of curves", ErrPointCount, len(points))
	}
	m.points = append(m.points[:0:0], points...)
	return nil
}

// ClearPoints empties the point buffer.
func (m *Mobject) ClearPoints() {
	m.points = nil
}

// StartPoint returns the first control point, ok is false without points.
func (m *Mobject) StartPoint() (geom.Point, bool) {
	if len(m.points) == 0 {
		return geom.Origin, false
	}
	return m.points[0], true
}

// EndPoint returns the last control point, ok is false without points.
func (m *Mobject) EndPoint() (geom.Point, bool) {
	if len(m.points) == 0 {
		return geom.Origin, false
	}
	return m.points[len(m.points)-1], true
}

// Style returns a copy of the mobject's style.
func (m *Mobject) Style() Style {
	return m.style.Clone()
}

// SetStyle replaces the style of the mobject, and of its whole family when
// family is set.
func (m *Mobject) SetStyle(s Style, family bool) {
	s = s.Normalized()
	for _, f := range m.members(family) {
		f.style = s.Clone()
	}
}

func (m *Mobject) members(family bool) []*Mobject {
	if family {
		return m.Family()
	}
	return []*Mobject{m}
}

// Parent returns the owning mobject, nil for roots.
func (m *Mobject) Parent() *Mobject { return m.parent }

// Submobjects returns the direct children in order.
func (m *Mobject) Submobjects() []*Mobject {
	return append([]*Mobject(nil), m.children...)
}

// Add appends children, taking them away from any previous parent.
// Children already owned by m are left in place.
func (m *Mobject) Add(children ...*Mobject) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		for a := m; a != nil; a = a.parent {
			if a == c {
				return fmt.Errorf("%w: %s into %s", ErrCycle, c.name, m.name)
			}
		}
	}
	for _, c := range children {
		if c == nil || c.parent == m {
			continue
		}
		if c.parent != nil {
			c.parent.detach(c)
		}
		c.parent = m
		m.children = append(m.children, c)
	}
	return nil
}

// Remove detaches the given children. Mobjects that are not children of m
// are ignored.
func (m *Mobject) Remove(children ...*Mobject) {
	for _, c := range children {
		if c != nil && c.parent == m {
			m.detach(c)
			c.parent = nil
		}
	}
}

func (m *Mobject) detach(c *Mobject) {
	for i, x := range m.children {
		if x == c {
			m.children = append(m.children[:i], m.children[i+1:]...)
			return
		}
	}
}

// Family returns m and all its descendants in pre-order.
func (m *Mobject) Family() []*Mobject {
	out := []*Mobject{m}
	for _, c := range m.children {
		out = append(out, c.Family()...)
	}
	return out
}

// FamilyWithPoints returns the family members that own points.
func (m *Mobject) FamilyWithPoints() []*Mobject {
	var out []*Mobject
	for _, f := range m.Family() {
		if len(f.points) > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Walk visits the family in pre-order with each node's depth below m.
// Walking stops at the first error, which is returned.
func (m *Mobject) Walk(fn func(node *Mobject, depth int) error) error {
	return m.walk(fn, 0)
}

func (m *Mobject) walk(fn func(*Mobject, int) error, depth int) error {
	if err := fn(m, depth); err != nil {
		return err
	}
	for _, c := range m.children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a deep copy of m: points, style, children and updaters.
// The copy has new IDs, no parent and no staged target.
func (m *Mobject) Copy() *Mobject {
	c := &Mobject{
		id:            uuid.New(),
		name:          m.name,
		kind:          m.kind,
		points:        append([]geom.Point(nil), m.points...),
		style:         m.style.Clone(),
		updaters:      append([]updater(nil), m.updaters...),
		nextUpdaterID: m.nextUpdaterID,
		suspended:     m.suspended,
	}
	for _, child := range m.children {
		cc := child.Copy()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// Become turns m into a copy of other while keeping m's identity and parent.
func (m *Mobject) Become(other *Mobject) {
	c := other.Copy()
	m.kind = c.kind
	m.points = c.points
	m.style = c.style
	for _, child := range m.children {
		child.parent = nil
	}
	m.children = c.children
	for _, child := range m.children {
		child.parent = m
	}
}
