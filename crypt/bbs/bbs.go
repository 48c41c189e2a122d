// Package bbs implements the Blum-Blum-Shub quadratic residue generator.
//
// The generator squares its state modulo a Blum integer M = p·q. If the state
// ever reaches 0 or 1 it stays there and every later output is constant; this
// is a property of the construction and is not reported as an error.
package bbs

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/tutils/tcipher/crypt/prime"
)

// Output holds the values derived from one step.
type Output struct {
	Raw    uint64
	Parity uint64
	LSB    uint64
}

// Value returns the field selected by m. Unknown methods select Raw.
func (o Output) Value(m Method) uint64 {
	switch m {
	case LeastSignificantBit:
		return o.LSB
	case EvenParityBit:
		return o.Parity
	default:
		return o.Raw
	}
}

// Generator computes xₙ₊₁ = xₙ² mod M.
type Generator struct {
	seed uint64
	p    uint64
	q    uint64
	m    uint64

	x uint64
}

// New creates a Generator for M = p·q. Both primes must be below 2³², distinct
// and congruent to 3 mod 4. The seed is reduced modulo M, which leaves the
// produced sequence unchanged.
func New(seed, p, q uint64) (*Generator, error) {
	if err := prime.CheckBlumPair(p, q); err != nil {
		return nil, fmt.Errorf("bbs: %w", err)
	}
	hi, m := bits.Mul64(p, q)
	if hi != 0 {
		return nil, fmt.Errorf("bbs: modulus %d·%d exceeds 64 bits", p, q)
	}
	return &Generator{
		seed: seed,
		p:    p,
		q:    q,
		m:    m,
		x:    seed % m,
	}, nil
}

// Next squares the state and returns every derived value.
func (g *Generator) Next() Output {
	hi, lo := bits.Mul64(g.x, g.x)
	g.x = bits.Rem64(hi, lo, g.m)
	return Output{
		Raw:    g.x,
		Parity: uint64(bits.OnesCount64(g.x) & 1),
		LSB:    g.x & 1,
	}
}

// Sequence returns n values selected by m. Values are produced on demand and
// each one advances the generator.
func (g *Generator) Sequence(n int, m Method) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < n; i++ {
			if !yield(g.Next().Value(m)) {
				return
			}
		}
	}
}

// Take drains n values selected by m into a slice.
func (g *Generator) Take(n int, m Method) []uint64 {
	if n <= 0 {
		return nil
	}
	out := make([]uint64, 0, n)
	for v := range g.Sequence(n, m) {
		out = append(out, v)
	}
	return out
}

// State returns the current xₙ.
func (g *Generator) State() uint64 {
	return g.x
}

// Seed returns the seed passed to New.
func (g *Generator) Seed() uint64 { return g.seed }
// P returns the first prime factor of the modulus.
func (g *Generator) P() uint64 { return g.p }
// Q returns the second prime factor of the modulus.
func (g *Generator) Q() uint64 { return g.q }
// Modulus returns M = p·q.
func (g *Generator) Modulus() uint64 { return g.m }

func (g *Generator) String() string {
	return fmt.Sprintf("bbs(seed=%d, p=%d, q=%d)", g.seed, g.p, g.q)
}
