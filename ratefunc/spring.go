package ratefunc

import (
	"github.com/charmbracelet/harmonica"

	"github.com/matt-g-everett/mathanim/util"
)

const springSamples = 240

var springTables util.Memoizer

// Spring returns a rate function following a damped spring released from 0
// towards 1. Damping below 1 overshoots and oscillates, 1 is critically
// damped. The simulated curve is corrected so that it ends exactly at 1.
func Spring(frequency, damping float64) Func {
	lut := springTables.Lut(util.Key("spring", frequency, damping), func() []float64 {
		return springLut(frequency, damping)
	})
	return func(t float64) float64 {
		return util.LookupLut(lut, t)
	}
}

func springLut(frequency, damping float64) []float64 {
	s := harmonica.NewSpring(1.0/float64(springSamples), frequency, damping)
	lut := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		lut[i] = pos
	}
	miss := 1 - lut[springSamples]
	for i := range lut {
		lut[i] += miss * float64(i) / float64(springSamples)
	}
	return lut
}

// Sampled returns a table-backed approximation of f with n samples.
// Useful for expensive custom functions evaluated every frame.
func Sampled(f Func, n int) Func {
	lut := util.GenerateLut(n, f)
	return func(t float64) float64 {
		return util.LookupLut(lut, t)
	}
}
