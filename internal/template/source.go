// Package template turns a validated domain configuration into rendered
// document text: weighted category sampling, template selection, variable
// binding and placeholder substitution.
package template

import "math/rand"

// Source is the injected randomness used by all selection steps. A seeded
// source makes the whole pipeline reproducible across runs and platforms.
type Source interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a deterministic Source seeded with the given value.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
