package stream

import (
	"math/rand"
	"time"

	"github.com/tutils/tcipher/crypt/bbs"
	"github.com/tutils/tcipher/crypt/prime"
)

// PrimeSource supplies candidate primes for the BBS modulus. The cipher keeps
// drawing pairs until both are congruent to 3 mod 4 and distinct.
type PrimeSource func(r *rand.Rand) (uint64, error)

// DefaultPrimeSource draws primes from [prime.Min, prime.Max).
var DefaultPrimeSource PrimeSource = func(r *rand.Rand) (uint64, error) {
	return prime.Rand(r, prime.Min, prime.Max)
}

type options struct {
	source    rand.Source
	primes    PrimeSource
	bbsMethod bbs.Method
}

// Option configures New
type Option func(opts *options)

func newOptions(opts ...Option) *options {
	opt := &options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.source == nil {
		opt.source = rand.NewSource(time.Now().UnixNano())
	}
	if opt.primes == nil {
		opt.primes = DefaultPrimeSource
	}

	return opt
}

// WithRandSource sets the randomness every generator parameter is drawn from.
func WithRandSource(src rand.Source) Option {
	return func(opts *options) {
		opts.source = src
	}
}

// WithPrimeSource replaces DefaultPrimeSource.
func WithPrimeSource(src PrimeSource) Option {
	return func(opts *options) {
		opts.primes = src
	}
}

// WithBBSMethod sets the extraction method of the BBS keystream.
// bbs.Raw yields values up to M, which overflow the code point range.
func WithBBSMethod(m bbs.Method) Option {
	return func(opts *options) {
		opts.bbsMethod = m
	}
}
