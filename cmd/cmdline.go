package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"strings"

	"github.com/tutils/tcipher/crypt/xor"
)

// Command lines can be passed as a single "@" argument that hides the
// original flags, key included, from casual inspection.
var (
	xorCrypt = xor.NewCrypt(33280939)
)

func encodeCmdline(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawStdEncoding, w1)
	w3 := xorCrypt.NewEncoder(w2, xor.WithEncoderKeystreamNewer(xor.BBSKeystream))
	w4 := gob.NewEncoder(w3)
	if err := w4.Encode(args); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return w1.String(), nil
}

func decodeCmdline(s string) ([]string, error) {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawStdEncoding, r1)
	r3 := xorCrypt.NewDecoder(r2, xor.WithDecoderKeystreamNewer(xor.BBSKeystream))
	r4 := gob.NewDecoder(r3)
	var args []string
	if err := r4.Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}
