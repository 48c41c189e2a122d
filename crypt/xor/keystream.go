package xor

import (
	"io"
	"math/rand"

	"github.com/tutils/tcipher/crypt"
	"github.com/tutils/tcipher/crypt/bbs"
	"github.com/tutils/tcipher/crypt/lcg"
	"github.com/tutils/tcipher/crypt/prime"
)

// KeystreamNewer creates an endless keystream for a seed
type KeystreamNewer func(seed int64) io.Reader

// RandomSourceNewer creates a rand.Source for a seed
type RandomSourceNewer func(int64) rand.Source

// SourceKeystream reads the keystream from a rand.Source.
func SourceKeystream(newer RandomSourceNewer) KeystreamNewer {
	return func(seed int64) io.Reader {
		return rand.New(newer(seed))
	}
}

// BBSKeystream draws a seed and two distinct Blum primes from an LCGSource
// seeded with seed, and packs the least significant bits of the resulting BBS
// generator into bytes.
func BBSKeystream(seed int64) io.Reader {
	r := rand.New(crypt.NewLCGSource(seed))
	p := mustBlum(r)
	q := mustBlum(r)
	for q == p {
		q = mustBlum(r)
	}
	g, err := bbs.New(crypt.Uint64Range(r, 2, prime.Max), p, q)
	if err != nil {
		panic(err)
	}
	return g.Reader(bbs.LeastSignificantBit)
}

// LCGKeystream draws LCG parameters from an LCGSource seeded with seed.
// The high bit of every keystream byte is zero.
func LCGKeystream(seed int64) io.Reader {
	r := rand.New(crypt.NewLCGSource(seed))
	g, err := lcg.New(
		crypt.Uint64Range(r, 0, 1<<32-1),
		crypt.Uint64Range(r, 1, 1<<16-1),
		crypt.Uint64Range(r, 0, 1<<16-1),
		crypt.Uint64Range(r, 1<<16, 1<<32-1),
	)
	if err != nil {
		panic(err)
	}
	return g.Reader()
}

func mustBlum(r *rand.Rand) uint64 {
	p, err := prime.Blum(r, prime.Min, prime.Max)
	if err != nil {
		panic(err)
	}
	return p
}
