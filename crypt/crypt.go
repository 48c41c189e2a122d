package crypt

import (
	"io"
)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}

// EncoderOptions is implemented by each Crypt's private encoder options
type EncoderOptions interface{}

// EncoderOption configures an encoder created by Crypt.NewEncoder
type EncoderOption func(opts EncoderOptions)

// DecoderOptions is implemented by each Crypt's private decoder options
type DecoderOptions interface{}

// DecoderOption configures a decoder created by Crypt.NewDecoder
type DecoderOption func(opts DecoderOptions)
