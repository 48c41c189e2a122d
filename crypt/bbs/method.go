package bbs

import (
	"fmt"
	"strings"
)

// Method selects which value of an Output a sequence retains.
type Method int

const (
	// LeastSignificantBit emits x & 1. It is the default.
	LeastSignificantBit Method = iota
	// EvenParityBit emits the population count of x mod 2.
	EvenParityBit
	// Raw emits x itself.
	Raw
)

var methodNames = [...]string{
	LeastSignificantBit: "least_significant_bit",
	EvenParityBit:       "even_parity_bit",
	Raw:                 "raw",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod accepts a method name or one of the short forms lsb, parity.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "least_significant_bit", "lsb":
		return LeastSignificantBit, nil
	case "even_parity_bit", "parity":
		return EvenParityBit, nil
	case "raw":
		return Raw, nil
	}
	return 0, fmt.Errorf("bbs: unknown method %q", s)
}
