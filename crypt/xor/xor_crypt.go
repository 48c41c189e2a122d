// Package xor implements a byte-stream Crypt. Every byte is XORed with the
// next byte of a keystream created from the Crypt's seed, so an encoder and a
// decoder built with the same seed and keystream newer invert each other as
// long as they see the bytes in the same order.
package xor

import (
	"io"

	"github.com/tutils/tcipher/crypt"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	seed int64
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:  w,
		ks: opt.keystreamNewer(c.seed),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:  r,
		ks: opt.keystreamNewer(c.seed),
	}
}

// NewCrypt create a new Crypt
func NewCrypt(seed int64) crypt.Crypt {
	return &xorCrypt{
		seed: seed,
	}
}

type xorEncoder struct {
	w   io.Writer
	ks  io.Reader
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (int, error) {
	e.buf = grow(e.buf, len(p))
	if _, err := io.ReadFull(e.ks, e.buf); err != nil {
		return 0, err
	}
	for i, b := range p {
		e.buf[i] ^= b
	}
	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r   io.Reader
	ks  io.Reader
	buf []byte
}

func (d *xorDecoder) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if n == 0 {
		return n, err
	}
	d.buf = grow(d.buf, n)
	if _, kerr := io.ReadFull(d.ks, d.buf); kerr != nil {
		return 0, kerr
	}
	for i, b := range d.buf {
		p[i] ^= b
	}
	return n, err
}

func grow(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
