package ratefunc

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestBoundaryValues(t *testing.T) {
	tests := []struct {
		name      string
		f         Func
		at0, at1  float64
		monotonic bool
	}{
		{"linear", Linear, 0, 1, true},
		{"smooth", Smooth, 0, 1, true},
		{"rush_into", RushInto, 0, 1, true},
		{"rush_from", RushFrom, 0, 1, true},
		{"slow_into", SlowInto, 0, 1, true},
		{"double_smooth", DoubleSmooth, 0, 1, true},
		{"there_and_back", ThereAndBack, 0, 0, false},
		{"there_and_back_with_pause", ThereAndBackWithPause(1.0 / 3), 0, 0, false},
		{"running_start", RunningStart(-0.5), 0, 1, false},
		{"not_quite_there", NotQuiteThere(Smooth, 0.7), 0, 0.7, true},
		{"wiggle", Wiggle(2), 0, 0, false},
		{"lingering", Lingering, 0, 1, true},
		{"ease_in_out_quad", EaseInOutQuad, 0, 1, true},
		{"ease_out_bounce", EaseOutBounce, 0, 1, false},
		{"spring", Spring(12, 0.4), 0, 1, false},
		{"critically damped spring", Spring(12, 1), 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(0); math.Abs(got-tt.at0) > epsilon {
				t.Errorf("f(0) = %v, want %v", got, tt.at0)
			}
			if got := tt.f(1); math.Abs(got-tt.at1) > epsilon {
				t.Errorf("f(1) = %v, want %v", got, tt.at1)
			}
			if !tt.monotonic {
				return
			}
			prev := tt.f(0)
			for i := 1; i <= 100; i++ {
				v := tt.f(float64(i) / 100)
				if v < prev-epsilon {
					t.Fatalf("not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestPurity(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		for _, x := range []float64{0, 0.13, 0.5, 0.77, 1} {
			if a, b := f(x), f(x); a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
				t.Errorf("%s(%v) not deterministic: %v vs %v", name, x, a, b)
			}
		}
	}
}

func TestSmoothSymmetry(t *testing.T) {
	if got := Smooth(0.5); math.Abs(got-0.5) > epsilon {
		t.Errorf("Smooth(0.5) = %v, want 0.5", got)
	}
	for _, x := range []float64{0.1, 0.2, 0.3, 0.4} {
		if a, b := Smooth(x), 1-Smooth(1-x); math.Abs(a-b) > epsilon {
			t.Errorf("Smooth(%v) = %v, 1-Smooth(%v) = %v", x, a, 1-x, b)
		}
	}
}

func TestThereAndBackPeaks(t *testing.T) {
	if got := ThereAndBack(0.5); math.Abs(got-1) > epsilon {
		t.Errorf("ThereAndBack(0.5) = %v, want 1", got)
	}
	f := ThereAndBackWithPause(0.5)
	for _, x := range []float64{0.3, 0.5, 0.7} {
		if got := f(x); got != 1 {
			t.Errorf("pause(%v) = %v, want 1", x, got)
		}
	}
}

func TestSquish(t *testing.T) {
	f := Squish(Linear, 0.2, 0.6)
	tests := []struct{ t, want float64 }{
		{0, 0}, {0.2, 0}, {0.4, 0.5}, {0.6, 1}, {1, 1},
	}
	for _, tt := range tests {
		if got := f(tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Squish(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if got := Squish(Linear, 0.3, 0.3)(0.9); got != 0.3 {
		t.Errorf("degenerate Squish = %v, want 0.3", got)
	}
}

func TestRunningStartPullsBack(t *testing.T) {
	f := RunningStart(-0.5)
	if f(0.2) >= 0 {
		t.Errorf("RunningStart(0.2) = %v, want negative", f(0.2))
	}
}

func TestSpringOvershoots(t *testing.T) {
	f := Spring(12, 0.2)
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, f(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("underdamped spring peak = %v, want > 1", peak)
	}
}

func TestSampledApproximates(t *testing.T) {
	f := Sampled(Smooth, 512)
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if math.Abs(f(x)-Smooth(x)) > 1e-3 {
			t.Errorf("Sampled(%v) = %v, want ~%v", x, f(x), Smooth(x))
		}
	}
}

func TestReverse(t *testing.T) {
	f := Reverse(Linear)
	if f(0) != 1 || f(1) != 0 {
		t.Errorf("Reverse(Linear) = %v..%v, want 1..0", f(0), f(1))
	}
}

func TestLookup(t *testing.T) {
	f, err := Lookup("")
	if err != nil || f(0.5) != Smooth(0.5) {
		t.Errorf("Lookup(\"\") err = %v, want Smooth", err)
	}
	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Lookup(nope) err = %v, want ErrUnknown", err)
	}
	if len(Names()) == 0 {
		t.Error("Names() is empty")
	}
}
