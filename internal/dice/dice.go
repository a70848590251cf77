// Package dice provides the randomness abstraction used by the engine.
//
// Every probability-dependent rule takes a Source so that callers can inject
// a seeded generator in production and a scripted one in tests.
package dice

import (
	"math/rand"
	"time"
)

// Source is a uniform random generator.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// New returns a Source seeded with the given value.
// A seed of 0 seeds from the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Chance reports whether a roll succeeds with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Percent rolls in [0, 100) and reports whether the roll is below rate.
func Percent(src Source, rate float64) bool {
	return src.Float64()*100 < rate
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Sample returns up to n elements of items chosen uniformly without
// replacement. items is not modified.
func Sample[T any](src Source, items []T, n int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if n > len(pool) {
		n = len(pool)
	}
	// Partial Fisher-Yates: the first n slots end up as the sample.
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
