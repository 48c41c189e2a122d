package bbs

import "io"

type reader struct {
	g *Generator
	m Method
}

// Reader returns an endless keystream over g. Bit methods pack eight
// consecutive bits into each byte, most significant first; Raw keeps the low
// byte of each value.
func (g *Generator) Reader(m Method) io.Reader {
	return &reader{g: g, m: m}
}

func (r *reader) Read(p []byte) (int, error) {
	for i := range p {
		if r.m == Raw {
			p[i] = byte(r.g.Next().Raw)
			continue
		}
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | byte(r.g.Next().Value(r.m))
		}
		p[i] = b
	}
	return len(p), nil
}
