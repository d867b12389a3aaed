package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(a, b []Point, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AlmostEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestLerpEndpointsExact(t *testing.T) {
	p := Pt(0.1, 0.7, -3.3)
	q := Pt(1e-3, 17.25, 0.3)
	if got := Lerp(p, q, 0); got != p {
		t.Errorf("Lerp(p, q, 0) = %v, want %v", got, p)
	}
	if got := Lerp(p, q, 1); got != q {
		t.Errorf("Lerp(p, q, 1) = %v, want %v", got, q)
	}
	if got := Lerp(Origin, Pt(4, 0, 0), 0.5); !AlmostEqual(got, Pt(2, 0, 0), epsilon) {
		t.Errorf("Lerp midpoint = %v, want (2, 0, 0)", got)
	}
}

func TestRotateAbout(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		axis  Point
		about Point
		want  Point
	}{
		{"quarter turn", Pt(1, 0, 0), math.Pi / 2, Out, Origin, Pt(0, 1, 0)},
		{"about center", Pt(2, 1, 0), math.Pi, Out, Pt(1, 1, 0), Pt(0, 1, 0)},
		{"zero axis defaults to out", Pt(1, 0, 0), math.Pi / 2, Point{}, Origin, Pt(0, 1, 0)},
		{"zero angle", Pt(3, 4, 5), 0, Up, Origin, Pt(3, 4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateAbout(tt.p, tt.angle, tt.axis, tt.about)
			if !AlmostEqual(got, tt.want, epsilon) {
				t.Errorf("RotateAbout = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true, want false")
	}
	box, ok := Bounds([]Point{Pt(1, -2, 0), Pt(-3, 4, 0), Pt(0, 0, 0)})
	if !ok {
		t.Fatal("Bounds ok = false")
	}
	if box.Min != Pt(-3, -2, 0) || box.Max != Pt(1, 4, 0) {
		t.Errorf("Bounds = %v, want min (-3,-2,0) max (1,4,0)", box)
	}
	u := UnionBounds(box, box)
	if u != box {
		t.Errorf("UnionBounds of flat box = %v, want %v", u, box)
	}
}

func TestCubicSubsegmentFullRangeIsIdentity(t *testing.T) {
	c := CubicBez{P0: Pt(0.1, 0.2, 0), P1: Pt(1.3, 2.9, 0), P2: Pt(2.2, -0.7, 0), P3: Pt(3.7, 0.4, 0)}
	if got := c.Subsegment(0, 1); got != c {
		t.Errorf("Subsegment(0, 1) = %v, want %v", got, c)
	}
}

func TestCubicSubsegmentMatchesEval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0, 0), P1: Pt(1, 2, 0), P2: Pt(3, 2, 0), P3: Pt(4, 0, 0)}
	ranges := [][2]float64{{0, 0.5}, {0.25, 0.75}, {0.5, 1}, {0.1, 0.2}}
	for _, r := range ranges {
		sub := c.Subsegment(r[0], r[1])
		for _, s := range []float64{0, 0.3, 0.5, 1} {
			want := c.Eval(r[0] + s*(r[1]-r[0]))
			if got := sub.Eval(s); !AlmostEqual(got, want, 1e-9) {
				t.Errorf("Subsegment(%v, %v).Eval(%v) = %v, want %v", r[0], r[1], s, got, want)
			}
		}
	}
}

func TestCubicSplitJoinsAtMidpoint(t *testing.T) {
	c := LineCurve(Pt(0, 0, 0), Pt(3, 3, 0))
	left, right := c.Split(0.5)
	if left.P3 != right.P0 {
		t.Errorf("split halves do not join: %v vs %v", left.P3, right.P0)
	}
	if !AlmostEqual(left.P3, Pt(1.5, 1.5, 0), epsilon) {
		t.Errorf("midpoint = %v, want (1.5, 1.5, 0)", left.P3)
	}
	if l := c.Length(16); math.Abs(l-3*math.Sqrt2) > 1e-9 {
		t.Errorf("Length = %v, want %v", l, 3*math.Sqrt2)
	}
}

func TestIntegerInterpolate(t *testing.T) {
	tests := []struct {
		n       int
		alpha   float64
		index   int
		residue float64
	}{
		{4, 0, 0, 0},
		{4, -1, 0, 0},
		{4, 1, 3, 1},
		{4, 0.5, 2, 0},
		{4, 0.6, 2, 0.4},
		{3, 0.5, 1, 0.5},
	}
	for _, tt := range tests {
		index, residue := IntegerInterpolate(tt.n, tt.alpha)
		if index != tt.index || math.Abs(residue-tt.residue) > 1e-9 {
			t.Errorf("IntegerInterpolate(%d, %v) = (%d, %v), want (%d, %v)",
				tt.n, tt.alpha, index, residue, tt.index, tt.residue)
		}
	}
}

func TestPartialPath(t *testing.T) {
	path := append(LineCurve(Pt(0, 0, 0), Pt(1, 0, 0)).Points(nil),
		LineCurve(Pt(1, 0, 0), Pt(2, 0, 0)).Points(nil)...)

	t.Run("empty", func(t *testing.T) {
		if got := PartialPath(nil, 0, 0.5); len(got) != 0 {
			t.Errorf("PartialPath(nil) = %v, want empty", got)
		}
	})
	t.Run("full range copies", func(t *testing.T) {
		got := PartialPath(path, 0, 1)
		if !pointsEqual(got, path, 0) {
			t.Errorf("PartialPath(0, 1) = %v, want %v", got, path)
		}
		got[0] = Pt(9, 9, 9)
		if path[0] == got[0] {
			t.Error("PartialPath(0, 1) aliases its input")
		}
	})
	t.Run("first quarter", func(t *testing.T) {
		got := PartialPath(path, 0, 0.25)
		if len(got) != PointsPerCurve {
			t.Fatalf("len = %d, want %d", len(got), PointsPerCurve)
		}
		if !AlmostEqual(got[3], Pt(0.5, 0, 0), epsilon) {
			t.Errorf("end = %v, want (0.5, 0, 0)", got[3])
		}
	})
	t.Run("spans curves", func(t *testing.T) {
		got := PartialPath(path, 0.25, 0.75)
		if len(got) != 2*PointsPerCurve {
			t.Fatalf("len = %d, want %d", len(got), 2*PointsPerCurve)
		}
		if !AlmostEqual(got[0], Pt(0.5, 0, 0), epsilon) || !AlmostEqual(got[len(got)-1], Pt(1.5, 0, 0), epsilon) {
			t.Errorf("partial = %v, want from (0.5,0,0) to (1.5,0,0)", got)
		}
	})
}

func TestInsertCurves(t *testing.T) {
	path := LineCurve(Pt(0, 0, 0), Pt(3, 0, 0)).Points(nil)
	got := InsertCurves(path, 2)
	if len(got) != 3*PointsPerCurve {
		t.Fatalf("len = %d, want %d", len(got), 3*PointsPerCurve)
	}
	curves := Curves(got)
	for i, c := range curves {
		if !AlmostEqual(c.P0, Pt(float64(i), 0, 0), epsilon) || !AlmostEqual(c.P3, Pt(float64(i+1), 0, 0), epsilon) {
			t.Errorf("curve %d = %v, want unit segment starting at %d", i, c, i)
		}
	}
	if got := InsertCurves(nil, 3); len(got) != 0 {
		t.Errorf("InsertCurves(nil) = %v, want empty", got)
	}
}

func TestArcPath(t *testing.T) {
	path := ArcPath(math.Pi, Out)
	start, end := Pt(1, 0, 0), Pt(-1, 0, 0)
	if got := path(start, end, 0); got != start {
		t.Errorf("arc at 0 = %v, want %v", got, start)
	}
	if got := path(start, end, 0.5); !AlmostEqual(got, Pt(0, 1, 0), epsilon) {
		t.Errorf("arc at 0.5 = %v, want (0, 1, 0)", got)
	}
	if got := path(start, end, 1); !AlmostEqual(got, end, epsilon) {
		t.Errorf("arc at 1 = %v, want %v", got, end)
	}
	if got := ArcPath(0, Out)(start, end, 0.5); !AlmostEqual(got, Origin, epsilon) {
		t.Errorf("zero arc at 0.5 = %v, want origin", got)
	}
}
