// Package stream implements a text stream cipher that XORs each code point
// with a precomputed BBS or LCG keystream.
//
// The key only fixes the keystream length. Generator parameters come from the
// configured randomness and never from the key's content, so two ciphers
// built from different keys of equal length and the same rand.Source encrypt
// identically. Decryption needs the same *Cipher that encrypted.
package stream

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tutils/tcipher/crypt"
	"github.com/tutils/tcipher/crypt/bbs"
	"github.com/tutils/tcipher/crypt/lcg"
)

// Method selects a keystream.
type Method int

const (
	// BBS selects the Blum-Blum-Shub keystream. It is the default.
	BBS Method = iota
	// LCG selects the linear congruential keystream.
	LCG
)

func (m Method) String() string {
	switch m {
	case BBS:
		return "BBS"
	case LCG:
		return "LCG"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts "bbs" or "lcg" in any case; empty selects BBS.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "BBS":
		return BBS, nil
	case "LCG":
		return LCG, nil
	}
	return 0, fmt.Errorf("stream: unknown method %q", s)
}

// Parameter ranges drawn at construction.
const (
	lcgSeedMax = 1<<32 - 1
	lcgAMin    = 1
	lcgAMax    = 1<<16 - 1
	lcgCMax    = 1<<16 - 1
	lcgMMin    = 1 << 16
	lcgMMax    = 1<<32 - 1
	bbsSeedMin = 2
	bbsSeedMax = 1<<32 - 1

	maxPrimeDraws = 1000
)

// Params records the generator parameters a Cipher was built with.
type Params struct {
	LCGSeed       uint64
	LCGMultiplier uint64
	LCGIncrement  uint64
	LCGModulus    uint64

	BBSSeed   uint64
	BBSP      uint64
	BBSQ      uint64
	BBSMethod bbs.Method
}

// Cipher owns one LCG and one BBS generator and the keystreams drained from
// them. After New returns the keystreams never change.
type Cipher struct {
	id  uuid.UUID
	key string
	n   int

	lcg    *lcg.Generator
	bbs    *bbs.Generator
	params Params

	keystreamBBS []uint64
	keystreamLCG []uint64
}

// New builds a cipher whose keystreams are as long as key in code points.
func New(key string, opts ...Option) (*Cipher, error) {
	opt := newOptions(opts...)
	r := rand.New(opt.source)
	n := utf8.RuneCountInString(key)

	lcgSeed := crypt.Uint64Range(r, 0, lcgSeedMax)
	lcgA := crypt.Uint64Range(r, lcgAMin, lcgAMax)
	lcgC := crypt.Uint64Range(r, 0, lcgCMax)
	lcgM := crypt.Uint64Range(r, lcgMMin, lcgMMax)
	l, err := lcg.New(lcgSeed, lcgA, lcgC, lcgM)
	if err != nil {
		return nil, err
	}

	bbsSeed := crypt.Uint64Range(r, bbsSeedMin, bbsSeedMax)
	p, q, err := blumPair(r, opt.primes)
	if err != nil {
		return nil, err
	}
	b, err := bbs.New(bbsSeed, p, q)
	if err != nil {
		return nil, err
	}

	c := &Cipher{
		id:  uuid.New(),
		key: key,
		n:   n,
		lcg: l,
		bbs: b,
		params: Params{
			LCGSeed:       lcgSeed,
			LCGMultiplier: lcgA,
			LCGIncrement:  lcgC,
			LCGModulus:    lcgM,
			BBSSeed:       bbsSeed,
			BBSP:          p,
			BBSQ:          q,
			BBSMethod:     opt.bbsMethod,
		},
	}
	c.keystreamBBS = b.Take(n, opt.bbsMethod)
	c.keystreamLCG = l.Take(n)
	return c, nil
}

func blumPair(r *rand.Rand, src PrimeSource) (p, q uint64, err error) {
	for i := 0; i < maxPrimeDraws; i++ {
		if p, err = src(r); err != nil {
			return 0, 0, fmt.Errorf("stream: prime source: %w", err)
		}
		if q, err = src(r); err != nil {
			return 0, 0, fmt.Errorf("stream: prime source: %w", err)
		}
		if p%4 == 3 && q%4 == 3 && p != q {
			return p, q, nil
		}
	}
	return 0, 0, fmt.Errorf("stream: no usable prime pair after %d draws: %w", maxPrimeDraws, crypt.ErrInvalidModulus)
}

// Encrypt XORs every code point of plaintext with the selected keystream.
// plaintext must hold exactly Len() code points.
func (c *Cipher) Encrypt(plaintext string, m Method) (string, error) {
	return c.transform(plaintext, m)
}

// Decrypt reverses Encrypt for the same cipher and method.
func (c *Cipher) Decrypt(ciphertext string, m Method) (string, error) {
	return c.transform(ciphertext, m)
}

func (c *Cipher) transform(text string, m Method) (string, error) {
	ks, err := c.keystream(m)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("stream: %w", crypt.ErrInvalidText)
	}
	if n := utf8.RuneCountInString(text); n != len(ks) {
		return "", fmt.Errorf("stream: text has %d code points, keystream has %d: %w", n, len(ks), crypt.ErrLengthMismatch)
	}

	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for _, r := range text {
		v := uint64(r) ^ ks[i]
		if v > unicode.MaxRune || !utf8.ValidRune(rune(v)) {
			return "", fmt.Errorf("stream: position %d: %#x xor %#x = %#x: %w", i, r, ks[i], v, crypt.ErrCodepointOverflow)
		}
		b.WriteRune(rune(v))
		i++
	}
	return b.String(), nil
}

func (c *Cipher) keystream(m Method) ([]uint64, error) {
	switch m {
	case BBS:
		return c.keystreamBBS, nil
	case LCG:
		return c.keystreamLCG, nil
	}
	return nil, fmt.Errorf("stream: unknown method %v", m)
}

// Keystream returns a copy of the keystream selected by m, or nil for an
// unknown method.
func (c *Cipher) Keystream(m Method) []uint64 {
	ks, err := c.keystream(m)
	if err != nil {
		return nil
	}
	return slices.Clone(ks)
}

// ID identifies this cipher instance. Ciphertexts only decrypt under the
// instance that produced them.
func (c *Cipher) ID() uuid.UUID { return c.id }

// Len returns the keystream length in code points.
func (c *Cipher) Len() int { return c.n }

// Key returns the key the cipher was built with.
func (c *Cipher) Key() string { return c.key }

// Params returns the drawn generator parameters.
func (c *Cipher) Params() Params { return c.params }

// Stretch repeats key and truncates the result to n code points.
func Stretch(key string, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	runes := []rune(key)
	if len(runes) == 0 {
		return "", fmt.Errorf("stream: %w", crypt.ErrEmptyKey)
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[i%len(runes)]
	}
	return string(out), nil
}
