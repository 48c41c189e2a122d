package xor

import (
	"math/rand"

	"github.com/tutils/tcipher/crypt"
)

// DefaultKeystreamNewer reads the keystream from math/rand.
var DefaultKeystreamNewer = SourceKeystream(rand.NewSource)

type xorEncoderOptions struct {
	keystreamNewer KeystreamNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.keystreamNewer == nil {
		opt.keystreamNewer = DefaultKeystreamNewer
	}
	return &opt
}

// WithEncoderKeystreamNewer sets the encoder keystream.
func WithEncoderKeystreamNewer(newer KeystreamNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.keystreamNewer = newer
		}
	}
}

// WithEncoderRandomSourceNewer reads the encoder keystream from a rand.Source.
func WithEncoderRandomSourceNewer(newer RandomSourceNewer) crypt.EncoderOption {
	return WithEncoderKeystreamNewer(SourceKeystream(newer))
}

type xorDecoderOptions struct {
	keystreamNewer KeystreamNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.keystreamNewer == nil {
		opt.keystreamNewer = DefaultKeystreamNewer
	}
	return &opt
}

// WithDecoderKeystreamNewer sets the decoder keystream.
func WithDecoderKeystreamNewer(newer KeystreamNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.keystreamNewer = newer
		}
	}
}

// WithDecoderRandomSourceNewer reads the decoder keystream from a rand.Source.
func WithDecoderRandomSourceNewer(newer RandomSourceNewer) crypt.DecoderOption {
	return WithDecoderKeystreamNewer(SourceKeystream(newer))
}
