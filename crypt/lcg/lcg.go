// Package lcg implements the linear congruential generator used for the
// LCG keystream.
package lcg

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/tutils/tcipher/crypt"
)

// OutputModulus bounds every value returned by Next to 7 bits.
const OutputModulus = 128

// Generator produces state ← (a·state + c) mod m.
type Generator struct {
	seed uint64
	a    uint64
	c    uint64
	m    uint64

	state uint64
}

// New creates a Generator. The seed is reduced modulo m, which leaves the
// produced sequence unchanged.
func New(seed, a, c, m uint64) (*Generator, error) {
	if m == 0 {
		return nil, fmt.Errorf("lcg: modulus must be positive: %w", crypt.ErrInvalidModulus)
	}
	return &Generator{
		seed:  seed,
		a:     a,
		c:     c,
		m:     m,
		state: seed % m,
	}, nil
}

// Next advances the generator and returns the new state mod 128.
func (g *Generator) Next() uint64 {
	hi, lo := bits.Mul64(g.a, g.state)
	var carry uint64
	lo, carry = bits.Add64(lo, g.c, 0)
	hi += carry
	g.state = bits.Rem64(hi, lo, g.m)
	return g.state % OutputModulus
}

// State returns the current state.
func (g *Generator) State() uint64 {
	return g.state
}

// Sequence returns n values from Next. Values are produced on demand, and
// each one advances the generator, so the sequence cannot be replayed.
func (g *Generator) Sequence(n int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < n; i++ {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Take drains n values into a slice.
func (g *Generator) Take(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	out := make([]uint64, 0, n)
	for v := range g.Sequence(n) {
		out = append(out, v)
	}
	return out
}

// Seed returns the seed passed to New.
func (g *Generator) Seed() uint64 { return g.seed }
// Multiplier returns a.
func (g *Generator) Multiplier() uint64 { return g.a }
// Increment returns c.
func (g *Generator) Increment() uint64 { return g.c }
// Modulus returns m.
func (g *Generator) Modulus() uint64 { return g.m }

func (g *Generator) String() string {
	return fmt.Sprintf("lcg(seed=%d, a=%d, c=%d, m=%d)", g.seed, g.a, g.c, g.m)
}
