// Package rng provides small deterministic random sources for the seeded
// layout styles.
//
// Sources are plain values constructed from layout inputs and passed
// explicitly to the code that draws from them. Nothing in this package keeps
// global state, so two layouts computed from the same configuration draw the
// same sequence regardless of what else runs in the process.
package rng

import "math"

// Source yields pseudo-random values in [0, 1).
type Source interface {
	Float64() float64
}

// Sine is a stateless hash-style source: draw i returns
// frac(sin(seed+i) * 10000). It is cheap and reproducible from (seed, i)
// alone, which lets a packer re-derive any draw by its index.
type Sine struct {
	seed  float64
	index int
}

// NewSine returns a Sine source positioned at draw 0.
func NewSine(seed float64) *Sine {
	return &Sine{seed: seed}
}

// Float64 returns the next draw.
func (s *Sine) Float64() float64 {
	v := At(s.seed, s.index)
	s.index++
	return v
}

// Index returns how many values have been drawn.
func (s *Sine) Index() int { return s.index }

// At returns draw i of the Sine sequence for seed.
func At(seed float64, i int) float64 {
	x := math.Sin(seed+float64(i)) * 10000
	v := x - math.Floor(x)
	if v >= 1 {
		v = 0
	}
	return v
}

// Park–Miller minimal standard constants.
const (
	parkMillerModulus    = 2147483647
	parkMillerMultiplier = 16807
)

// ParkMiller is the minimal-standard linear congruential generator.
type ParkMiller struct {
	state int64
}

// NewParkMiller seeds the generator. Seeds are reduced modulo 2^31-1 and a
// zero state is replaced by 1 so the sequence never collapses.
func NewParkMiller(seed int64) *ParkMiller {
	s := seed % parkMillerModulus
	if s < 0 {
		s += parkMillerModulus
	}
	if s == 0 {
		s = 1
	}
	return &ParkMiller{state: s}
}

// Next advances the generator and returns the new state in [1, 2^31-2].
func (p *ParkMiller) Next() int64 {
	p.state = p.state * parkMillerMultiplier % parkMillerModulus
	return p.state
}

// Float64 returns the next draw mapped onto [0, 1).
func (p *ParkMiller) Float64() float64 {
	return float64(p.Next()-1) / float64(parkMillerModulus-1)
}

// Pick returns floor(r*n) for a draw r, clamped to [0, n-1].
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(src.Float64()*float64(n)), n-1)
}

var (
	_ Source = (*Sine)(nil)
	_ Source = (*ParkMiller)(nil)
)
