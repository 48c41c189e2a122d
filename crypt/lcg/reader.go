package lcg

import "io"

type reader struct {
	g *Generator
}

// Reader returns an endless keystream with one Next value per byte. The high
// bit of every byte is zero.
func (g *Generator) Reader() io.Reader {
	return reader{g}
}

func (r reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.g.Next())
	}
	return len(p), nil
}
