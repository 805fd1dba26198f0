package vmath

import (
	"math"
	"time"
)

// FastRand is a xorshift64 generator, not safe for concurrent use
// Gameplay draws every random number from one instance owned by the game context
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; zero seed is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, lo+span)
func (r *FastRand) Range(lo, span float64) float64 {
	return lo + r.Float64()*span
}

// Angle returns a uniform angle in [0, 2pi)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// Duration returns a uniform duration in [lo, lo+span)
func (r *FastRand) Duration(lo, span time.Duration) time.Duration {
	return lo + time.Duration(r.Float64()*float64(span))
}
