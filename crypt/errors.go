package crypt

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidModulus is returned when generator parameters cannot form a
	// valid modulus: a BBS prime that is composite, not congruent to 3 mod 4,
	// or equal to its partner, or an LCG modulus of zero.
	ErrInvalidModulus = errors.New("invalid modulus parameters")

	// ErrLengthMismatch is returned when a text's length differs from the
	// cipher's keystream length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrCodepointOverflow is returned when an XOR result is not a valid
	// Unicode code point.
	ErrCodepointOverflow = errors.New("code point overflow")

	// ErrInvalidText is returned when a text is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")

	// ErrEmptyKey is returned when an empty key has to be stretched.
	ErrEmptyKey = errors.New("empty key")

	// ErrNoPrime is returned when a range contains no prime.
	ErrNoPrime = errors.New("no prime in range")
)
