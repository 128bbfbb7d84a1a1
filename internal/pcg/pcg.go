// Package pcg is a small PCG32 generator. It is deterministic for a given
// seed, which keeps benchmark inputs and randomized tests reproducible.
package pcg

import (
	"math/bits"
)

type PCG struct {
	state uint64
	inc   uint64
}

const mul = 6364136223846793005

// New seeds a generator. Different streams with the same seed produce
// unrelated sequences.
func New(seed, stream uint64) PCG {
	// equivalent to starting from a zero state, stepping once, adding the
	// seed and stepping again
	inc := stream<<1 | 1
	return PCG{
		state: (inc+seed)*mul + inc,
		inc:   inc,
	}
}

// Uint32 returns a random uint32.
func (p *PCG) Uint32() uint32 {
	// the zero value behaves like New(0, 0)
	if p.inc == 0 {
		*p = New(0, 0)
	}

	old := p.state
	p.state = old*mul + p.inc

	xorshift := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshift, -int(old>>59))
}

// Intn returns an int in [0, n). n must be in (0, 2^32].
func (p *PCG) Intn(n int) int {
	return int((uint64(p.Uint32()) * uint64(n)) >> 32)
}

// Fill overwrites dst with values in [0, n).
func (p *PCG) Fill(dst []int, n int) {
	for i := range dst {
		dst[i] = p.Intn(n)
	}
}
