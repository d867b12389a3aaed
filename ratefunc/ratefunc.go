// Package ratefunc provides rate functions: pure mappings from normalized
// animation time t in [0,1] to progress.
//
// Every Func must be deterministic and free of side effects so that seeking an
// animation to the same alpha twice yields identical state. Linear and Smooth
// satisfy f(0)=0, f(1)=1 and are monotonic; the specialty functions may
// overshoot or return to 0 at t=1.
package ratefunc

import (
	"math"
)

// Func maps normalized time to progress.
type Func func(t float64) float64

// Linear is the identity rate function.
func Linear(t float64) float64 {
	return t
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clip01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}

// SmoothWith returns a sigmoid ease in/out with the given inflection.
// Larger inflections spend more time near the ends.
func SmoothWith(inflection float64) Func {
	e := sigmoid(-inflection / 2)
	return func(t float64) float64 {
		return clip01((sigmoid(inflection*(t-0.5)) - e) / (1 - 2*e))
	}
}

var smooth10 = SmoothWith(10)

// Smooth is the default rate function of leaf animations.
func Smooth(t float64) float64 {
	return smooth10(t)
}

// RushInto starts slowly and arrives at full speed.
func RushInto(t float64) float64 {
	return 2 * Smooth(t/2)
}

// RushFrom starts at full speed and slows into the end.
func RushFrom(t float64) float64 {
	return 2*Smooth(t/2+0.5) - 1
}

// SlowInto follows a quarter circle, decelerating into the end.
func SlowInto(t float64) float64 {
	return math.Sqrt(1 - (1-t)*(1-t))
}

// DoubleSmooth applies Smooth to each half of the interval.
func DoubleSmooth(t float64) float64 {
	if t < 0.5 {
		return 0.5 * Smooth(2*t)
	}
	return 0.5 * (1 + Smooth(2*t-1))
}

// ThereAndBack goes to 1 at t=0.5 and returns to 0 at t=1.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 * (1 - t))
}

// ThereAndBackWithPause is ThereAndBack holding at 1 for pauseRatio of the
// interval.
func ThereAndBackWithPause(pauseRatio float64) Func {
	a := 1 / pauseRatio
	return func(t float64) float64 {
		switch {
		case t < 0.5-pauseRatio/2:
			return Smooth(a * t)
		case t < 0.5+pauseRatio/2:
			return 1
		default:
			return Smooth(a - a*t)
		}
	}
}

// RunningStart pulls back by pull before running to 1.
func RunningStart(pull float64) Func {
	return bezier1D([]float64{0, 0, pull, pull, 1, 1, 1})
}

// NotQuiteThere scales f so it stops at proportion of the way.
func NotQuiteThere(f Func, proportion float64) Func {
	return func(t float64) float64 {
		return proportion * f(t)
	}
}

// Wiggle oscillates wiggles times with a ThereAndBack envelope.
func Wiggle(wiggles float64) Func {
	return func(t float64) float64 {
		return ThereAndBack(t) * math.Sin(wiggles*math.Pi*t)
	}
}

// Squish compresses f into [a, b]: f(0) before a, f(1) after b.
func Squish(f Func, a, b float64) Func {
	return func(t float64) float64 {
		switch {
		case a == b:
			return a
		case t < a:
			return f(0)
		case t > b:
			return f(1)
		}
		return f((t - a) / (b - a))
	}
}

// Lingering reaches 1 at t=0.8 and stays there.
func Lingering(t float64) float64 {
	return Squish(Linear, 0, 0.8)(t)
}

// ExponentialDecay approaches 1 with the given half life, measured in
// normalized time.
func ExponentialDecay(halfLife float64) Func {
	return func(t float64) float64 {
		return 1 - math.Exp(-t/halfLife)
	}
}

// Reverse plays f backwards.
func Reverse(f Func) Func {
	return func(t float64) float64 {
		return f(1 - t)
	}
}

// bezier1D evaluates the one dimensional Bezier curve with the given control
// values.
func bezier1D(ctrl []float64) Func {
	n := len(ctrl) - 1
	binom := make([]float64, n+1)
	binom[0] = 1
	for k := 1; k <= n; k++ {
		binom[k] = binom[k-1] * float64(n-k+1) / float64(k)
	}
	return func(t float64) float64 {
		var sum float64
		for k, c := range ctrl {
			sum += binom[k] * math.Pow(1-t, float64(n-k)) * math.Pow(t, float64(k)) * c
		}
		return sum
	}
}
