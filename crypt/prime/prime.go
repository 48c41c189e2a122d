// Package prime supplies and checks the primes behind a Blum modulus.
package prime

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/tutils/tcipher/crypt"
)

// Range the stream cipher draws its BBS primes from.
const (
	Min uint64 = 1 << 16
	Max uint64 = 1<<32 - 1
)

// ProbablyPrime is exact for inputs below 2⁶⁴, so rounds only add margin.
const rounds = 20

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(rounds)
}

// IsBlum reports whether p is a prime congruent to 3 mod 4.
func IsBlum(p uint64) bool {
	return p%4 == 3 && IsPrime(p)
}

// CheckBlumPair validates the primes of a Blum integer p·q.
func CheckBlumPair(p, q uint64) error {
	if p == q {
		return fmt.Errorf("p and q must differ, both are %d: %w", p, crypt.ErrInvalidModulus)
	}
	for _, n := range [...]uint64{p, q} {
		if !IsPrime(n) {
			return fmt.Errorf("%d is not prime: %w", n, crypt.ErrInvalidModulus)
		}
		if n%4 != 3 {
			return fmt.Errorf("%d is not congruent to 3 mod 4: %w", n, crypt.ErrInvalidModulus)
		}
	}
	return nil
}

// Rand returns a random prime in [lo, hi). A start point n is drawn uniformly
// from the range; the first prime greater than n is returned, or, when there
// is none below hi, the largest prime below hi.
func Rand(r *rand.Rand, lo, hi uint64) (uint64, error) {
	return search(r, lo, hi, IsPrime)
}

// Blum returns a random prime in [lo, hi) congruent to 3 mod 4, scanning
// from a uniformly drawn start point the way Rand does.
func Blum(r *rand.Rand, lo, hi uint64) (uint64, error) {
	return search(r, lo, hi, IsBlum)
}

func search(r *rand.Rand, lo, hi uint64, ok func(uint64) bool) (uint64, error) {
	if lo < 2 {
		lo = 2
	}
	if lo >= hi {
		return 0, fmt.Errorf("prime: [%d, %d): %w", lo, hi, crypt.ErrNoPrime)
	}
	n := crypt.Uint64Range(r, lo, hi-1)
	for p := n + 1; p < hi; p++ {
		if ok(p) {
			return p, nil
		}
	}
	for p := hi; p > lo; {
		p--
		if ok(p) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("prime: [%d, %d): %w", lo, hi, crypt.ErrNoPrime)
}
