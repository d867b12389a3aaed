package ratefunc

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknown is returned by Lookup for names that are not registered.
var ErrUnknown = errors.New("unknown rate function")

var registry = map[string]Func{
	"linear":                    Linear,
	"smooth":                    Smooth,
	"rush_into":                 RushInto,
	"rush_from":                 RushFrom,
	"slow_into":                 SlowInto,
	"double_smooth":             DoubleSmooth,
	"there_and_back":            ThereAndBack,
	"there_and_back_with_pause": ThereAndBackWithPause(1.0 / 3),
	"running_start":             RunningStart(-0.5),
	"not_quite_there":           NotQuiteThere(Smooth, 0.7),
	"wiggle":                    Wiggle(2),
	"lingering":                 Lingering,
	"exponential_decay":         ExponentialDecay(0.1),
	"spring":                    Spring(12, 0.4),
	"ease_in_quad":              EaseInQuad,
	"ease_out_quad":             EaseOutQuad,
	"ease_in_out_quad":          EaseInOutQuad,
	"ease_in_cubic":             EaseInCubic,
	"ease_out_cubic":            EaseOutCubic,
	"ease_in_out_cubic":         EaseInOutCubic,
	"ease_in_sine":              EaseInSine,
	"ease_out_sine":             EaseOutSine,
	"ease_in_out_sine":          EaseInOutSine,
	"ease_in_expo":              EaseInExpo,
	"ease_out_expo":             EaseOutExpo,
	"ease_in_out_expo":          EaseInOutExpo,
	"ease_in_circ":              EaseInCirc,
	"ease_out_circ":             EaseOutCirc,
	"ease_in_out_circ":          EaseInOutCirc,
	"ease_in_back":              EaseInBack,
	"ease_out_back":             EaseOutBack,
	"ease_in_out_back":          EaseInOutBack,
	"ease_in_elastic":           EaseInElastic,
	"ease_out_elastic":          EaseOutElastic,
	"ease_in_out_elastic":       EaseInOutElastic,
	"ease_in_bounce":            EaseInBounce,
	"ease_out_bounce":           EaseOutBounce,
	"ease_in_out_bounce":        EaseInOutBounce,
}

// Lookup returns the rate function registered under name.
// The empty name resolves to Smooth.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Smooth, nil
	}
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f, nil
}

// Names lists the registered rate function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
