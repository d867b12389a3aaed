package mobject

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
)

const epsilon = 1e-9

func mustGroup(t *testing.T, children ...*Mobject) *Mobject {
	t.Helper()
	g, err := NewGroup("group", children...)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	return g
}

func TestSetPointsRequiresWholeCurves(t *testing.T) {
	m := New("m")
	err := m.SetPoints(make([]geom.Point, 5))
	if !errors.Is(err, ErrPointCount) {
		t.Fatalf("SetPoints(5 points) error = %v, want ErrPointCount", err)
	}
	if err := m.SetPoints(make([]geom.Point, 8)); err != nil {
		t.Fatalf("SetPoints(8 points): %v", err)
	}
	if m.CurveCount() != 2 {
		t.Errorf("CurveCount = %d, want 2", m.CurveCount())
	}

	cloud := NewPointCloud("cloud", make([]geom.Point, 3))
	if err := cloud.SetPoints(make([]geom.Point, 5)); err != nil {
		t.Errorf("point cloud SetPoints: %v", err)
	}
}

func TestAddReparents(t *testing.T) {
	a, b, c := New("a"), New("b"), New("c")
	first := mustGroup(t, a, b)
	second := mustGroup(t, c)

	if err := second.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.Parent() != second {
		t.Errorf("a.Parent() = %v, want second", a.Parent())
	}
	if got := first.Submobjects(); len(got) != 1 || got[0] != b {
		t.Errorf("first children = %v, want [b]", got)
	}
	if err := second.Add(a); err != nil {
		t.Fatalf("re-Add: %v", err)
	}
	if n := len(second.Submobjects()); n != 2 {
		t.Errorf("re-adding a child changed the child count to %d", n)
	}

	second.Remove(c, b)
	if c.Parent() != nil {
		t.Errorf("removed child still has a parent")
	}
	if b.Parent() != first {
		t.Errorf("Remove detached a mobject owned by another parent")
	}
}

func TestAddRejectsCycles(t *testing.T) {
	leaf := New("leaf")
	mid := mustGroup(t, leaf)
	root := mustGroup(t, mid)

	if err := leaf.Add(root); !errors.Is(err, ErrCycle) {
		t.Errorf("adding an ancestor: error = %v, want ErrCycle", err)
	}
	if err := mid.Add(mid); !errors.Is(err, ErrCycle) {
		t.Errorf("adding self: error = %v, want ErrCycle", err)
	}
	if len(leaf.Submobjects()) != 0 {
		t.Errorf("failed Add modified the tree")
	}
}

func TestFamilyAndWalk(t *testing.T) {
	a, b, c := Square(1), Circle(1), New("empty")
	inner := mustGroup(t, b, c)
	root := mustGroup(t, a, inner)

	want := []*Mobject{root, a, inner, b, c}
	got := root.Family()
	if len(got) != len(want) {
		t.Fatalf("Family has %d members, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Family[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len(root.FamilyWithPoints()); n != 2 {
		t.Errorf("FamilyWithPoints has %d members, want 2", n)
	}

	var depths []int
	if err := root.Walk(func(_ *Mobject, depth int) error {
		depths = append(depths, depth)
		return nil
	}); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	wantDepths := []int{0, 1, 1, 2, 2}
	for i := range wantDepths {
		if depths[i] != wantDepths[i] {
			t.Errorf("depths = %v, want %v", depths, wantDepths)
			break
		}
	}

	stop := errors.New("stop")
	visited := 0
	err := root.Walk(func(*Mobject, int) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || visited != 2 {
		t.Errorf("Walk did not stop at the first error (visited %d, err %v)", visited, err)
	}
}

func TestCopyIsDeep(t *testing.T) {
	sq := Square(2)
	root := mustGroup(t, sq)
	root.GenerateTarget()
	calls := 0
	root.AddUpdater(func(*Mobject) { calls++ })

	c := root.Copy()
	if c.ID() == root.ID() {
		t.Errorf("copy shares the original ID")
	}
	if c.Parent() != nil || c.Target() != nil {
		t.Errorf("copy kept parent or target")
	}
	kids := c.Submobjects()
	if len(kids) != 1 || kids[0] == sq || kids[0].Parent() != c {
		t.Fatalf("copy children not deep copied")
	}

	kids[0].Shift(geom.Pt(5, 0, 0)).SetColor(Red)
	if got := sq.Center(); !geom.AlmostEqual(got, geom.Origin, epsilon) {
		t.Errorf("shifting the copy moved the original to %v", got)
	}
	if sq.Style().StrokeColor == Red {
		t.Errorf("recolouring the copy changed the original")
	}

	c.Update(0)
	if calls != 1 {
		t.Errorf("copied updater ran %d times, want 1", calls)
	}
}

func TestBecome(t *testing.T) {
	m := Square(1)
	parent := mustGroup(t, m)
	id := m.ID()

	m.Become(Circle(3))
	if m.ID() != id || m.Parent() != parent {
		t.Errorf("Become changed identity or parent")
	}
	if m.CurveCount() != 8 {
		t.Errorf("CurveCount after Become = %d, want 8", m.CurveCount())
	}
	if math.Abs(m.Width()-6) > 1e-6 {
		t.Errorf("Width after Become = %v, want 6", m.Width())
	}
}

func TestTarget(t *testing.T) {
	m := Square(1)
	if m.Target() != nil {
		t.Fatalf("new mobject has a target")
	}
	target := m.GenerateTarget()
	target.Shift(geom.Right)
	if m.Target() != target {
		t.Errorf("Target did not return the staged copy")
	}
	if !geom.AlmostEqual(m.Center(), geom.Origin, epsilon) {
		t.Errorf("editing the target moved the mobject")
	}
	m.ClearTarget()
	if m.Target() != nil {
		t.Errorf("ClearTarget left a target")
	}
}

func TestUpdaters(t *testing.T) {
	m := Dot(geom.Origin, 0.1)
	child := Square(1)
	if err := m.Add(child); err != nil {
		t.Fatal(err)
	}
	plain, timed := 0, 0.0
	m.AddUpdater(func(*Mobject) { plain++ })
	id := child.AddTimeUpdater(func(_ *Mobject, dt float64) { timed += dt })

	if !m.HasUpdaters() || !m.HasTimeUpdaters() {
		t.Fatalf("updaters not registered")
	}
	m.Update(0.5)
	if plain != 1 || timed != 0.5 {
		t.Errorf("after Update: plain=%d timed=%v", plain, timed)
	}

	m.SuspendUpdating(true)
	m.Update(1)
	if plain != 1 || timed != 0.5 {
		t.Errorf("suspended updaters ran: plain=%d timed=%v", plain, timed)
	}
	if !child.IsUpdatingSuspended() {
		t.Errorf("family suspension missed the child")
	}

	m.ResumeUpdating(true)
	if plain != 2 || timed != 0.5 {
		t.Errorf("ResumeUpdating should run one zero step: plain=%d timed=%v", plain, timed)
	}

	if !child.RemoveUpdater(id) || child.RemoveUpdater(id) {
		t.Errorf("RemoveUpdater should succeed exactly once")
	}
	if m.HasTimeUpdaters() {
		t.Errorf("time updater still reported after removal")
	}
	m.ClearUpdaters(true)
	if m.HasUpdaters() {
		t.Errorf("ClearUpdaters left updaters")
	}
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(*Mobject)
		center geom.Point
		width  float64
		height float64
	}{
		{"shift", func(m *Mobject) { m.Shift(geom.Pt(1, 2, 0)) }, geom.Pt(1, 2, 0), 2, 2},
		{"scale", func(m *Mobject) { m.Scale(3) }, geom.Origin, 6, 6},
		{"scale about corner", func(m *Mobject) { m.ScaleAbout(2, geom.Pt(1, 1, 0)) }, geom.Pt(-1, -1, 0), 4, 4},
		{"stretch", func(m *Mobject) { m.Stretch(2, 0) }, geom.Origin, 4, 2},
		{"rotate", func(m *Mobject) { m.Stretch(2, 0).Rotate(math.Pi/2, geom.Out) }, geom.Origin, 2, 4},
		{"move to", func(m *Mobject) { m.MoveTo(geom.Pt(-3, 0, 0)) }, geom.Pt(-3, 0, 0), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Square(2)
			tt.apply(m)
			if got := m.Center(); !geom.AlmostEqual(got, tt.center, 1e-9) {
				t.Errorf("Center = %v, want %v", got, tt.center)
			}
			if got := m.Width(); math.Abs(got-tt.width) > 1e-9 {
				t.Errorf("Width = %v, want %v", got, tt.width)
			}
			if got := m.Height(); math.Abs(got-tt.height) > 1e-9 {
				t.Errorf("Height = %v, want %v", got, tt.height)
			}
		})
	}
}

func TestEmptyCenter(t *testing.T) {
	if got := New("empty").Center(); got != geom.Origin {
		t.Errorf("Center of empty mobject = %v, want origin", got)
	}
}

func TestStyleSetters(t *testing.T) {
	m := mustGroup(t, Square(1), Circle(1))
	m.SetOpacity(1.7)
	for _, f := range m.Family() {
		s := f.Style()
		if s.StrokeOpacity != 1 || s.FillOpacity != 1 {
			t.Errorf("%s opacity not clamped: %+v", f.Name(), s)
		}
	}
	m.Fade(0.25)
	if got := m.Submobjects()[0].Style().StrokeOpacity; math.Abs(got-0.75) > epsilon {
		t.Errorf("StrokeOpacity after Fade = %v, want 0.75", got)
	}

	m.SetStroke(Blue, -1)
	if s := m.Style(); s.StrokeColor != Blue || s.StrokeWidth != DefaultStyle().StrokeWidth {
		t.Errorf("SetStroke with negative width: %+v", s)
	}

	s := DefaultStyle()
	s.StrokeWidth = -2
	s.FillOpacity = -1
	m.SetStyle(s, false)
	if got := m.Style(); got.StrokeWidth != 0 || got.FillOpacity != 0 {
		t.Errorf("SetStyle did not normalize: %+v", got)
	}
	if got := m.Submobjects()[0].Style(); got.StrokeColor != Blue {
		t.Errorf("SetStyle without family changed a child")
	}
}

func TestInterpolateStyle(t *testing.T) {
	a := DefaultStyle()
	b := DefaultStyle()
	b.StrokeWidth = 8
	b.StrokeColor = Black
	b.FillColors = []colorful.Color{Red, Blue}

	mid := InterpolateStyle(a, b, 0.5)
	if mid.StrokeWidth != 6 {
		t.Errorf("StrokeWidth = %v, want 6", mid.StrokeWidth)
	}
	if len(mid.FillColors) != 2 {
		t.Errorf("FillColors has %d entries, want 2", len(mid.FillColors))
	}
	if got := InterpolateStyle(a, b, 0); got.StrokeColor != a.StrokeColor {
		t.Errorf("alpha 0 stroke = %v, want %v", got.StrokeColor, a.StrokeColor)
	}
	if got := InterpolateStyle(a, b, 1); got.StrokeColor != b.StrokeColor || got.StrokeWidth != 8 {
		t.Errorf("alpha 1 = %+v, want end style", got)
	}
}

func TestCircleIsRound(t *testing.T) {
	c := Circle(2)
	if c.CurveCount() != 8 {
		t.Fatalf("CurveCount = %d, want 8", c.CurveCount())
	}
	for _, curve := range geom.Curves(c.Points()) {
		for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p := curve.Eval(u)
			if r := math.Hypot(p.X, p.Y); math.Abs(r-2) > 1e-3 {
				t.Errorf("point %v at radius %v, want 2", p, r)
			}
		}
	}
	start, _ := c.StartPoint()
	end, _ := c.EndPoint()
	if !geom.AlmostEqual(start, end, 1e-9) {
		t.Errorf("circle is not closed: %v != %v", start, end)
	}
}

func TestArcSweep(t *testing.T) {
	a := Arc(geom.Origin, 1, 0, math.Pi/2)
	if a.CurveCount() != 2 {
		t.Errorf("quarter arc has %d curves, want 2", a.CurveCount())
	}
	end, _ := a.EndPoint()
	if !geom.AlmostEqual(end, geom.Pt(0, 1, 0), 1e-9) {
		t.Errorf("quarter arc ends at %v", end)
	}
}
