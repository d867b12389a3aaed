package util

import (
	"fmt"
	"sync"

	"github.com/fogleman/ease"
)

// GenerateLut samples f at length evenly spaced points covering [0,1]
// inclusive. A nil f samples ease.Linear.
func GenerateLut(length int, f func(float64) float64) []float64 {
	if f == nil {
		f = ease.Linear
	}
	if length < 2 {
		length = 2
	}
	lut := make([]float64, length)
	increment := 1.0 / float64(length-1)
	for i := range lut {
		lut[i] = f(float64(i) * increment)
	}
	lut[length-1] = f(1)
	return lut
}

// LookupLut reads a table produced by GenerateLut at t, interpolating
// linearly between samples. t is clamped to [0,1].
func LookupLut(lut []float64, t float64) float64 {
	switch {
	case len(lut) == 0:
		return t
	case t <= 0:
		return lut[0]
	case t >= 1:
		return lut[len(lut)-1]
	}
	pos := t * float64(len(lut)-1)
	i := int(pos)
	frac := pos - float64(i)
	if i+1 >= len(lut) {
		return lut[len(lut)-1]
	}
	return lut[i]*(1-frac) + lut[i+1]*frac
}

// Memoizer caches look-up tables by key so identical tables are only
// generated once. The zero value is ready to use and safe for concurrent use.
type Memoizer struct {
	mu     sync.Mutex
	tables map[string][]float64
}

// Lut returns the cached table for key, generating it with gen on first use.
func (m *Memoizer) Lut(key string, gen func() []float64) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if lut, ok := m.tables[key]; ok {
		return lut
	}
	if m.tables == nil {
		m.tables = make(map[string][]float64)
	}
	lut := gen()
	m.tables[key] = lut
	return lut
}

// Len returns the number of cached tables.
func (m *Memoizer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tables)
}

// Key formats a cache key from its parts.
func Key(name string, params ...float64) string {
	return fmt.Sprint(name, params)
}
