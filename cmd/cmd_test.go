package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/tutils/tcipher/crypt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	err := Run(args)
	return out.String(), err
}

func TestBBSCommand(t *testing.T) {
	out, err := execute(t, "bbs", "--seed=3", "--p=11", "--q=23", "--count=6", "--bits=raw")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[9 81 236 36 31 202]\n" {
		t.Fatalf("got %q", out)
	}

	out, err = execute(t, "bbs", "--seed=3", "--p=11", "--q=23", "--count=6", "--bits=lsb")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[1 1 0 0 1 0]\n" {
		t.Fatalf("got %q", out)
	}
}

func TestBBSCommandInvalidPrime(t *testing.T) {
	_, err := execute(t, "bbs", "--seed=3", "--p=13", "--q=23", "--count=6", "--bits=raw")
	if !errors.Is(err, crypt.ErrInvalidModulus) {
		t.Fatalf("err = %v, want ErrInvalidModulus", err)
	}
}

func TestLCGCommand(t *testing.T) {
	out, err := execute(t, "lcg", "--seed=1", "--a=5", "--c=3", "--m=16", "--count=4")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[8 11 10 5]\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--key=abc", "--plaintext=Hello, Stream Cipher!", "--method=both", "--bbs-bits=lsb", "--seed=42")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Encrypted BBS: ",
		"Encrypted LCG: ",
		`Decrypted BBS: "Hello, Stream Cipher!"`,
		`Decrypted LCG: "Hello, Stream Cipher!"`,
		"BBS Encryption Time: ",
		"LCG Decryption Time: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRunCommandSingleMethod(t *testing.T) {
	out, err := execute(t, "run", "--key=k", "--plaintext=xyz", "--method=lcg", "--bbs-bits=lsb", "--seed=1")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "BBS") || !strings.Contains(out, `Decrypted LCG: "xyz"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunCommandBadMethod(t *testing.T) {
	if _, err := execute(t, "run", "--key=k", "--plaintext=xyz", "--method=rc4", "--bbs-bits=lsb", "--seed=1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCmdline(t *testing.T) {
	args := []string{"run", "--key=816559", "--plaintext=Hello, Stream Cipher!"}
	s, err := encodeCmdline(args)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(s, "816559") {
		t.Fatal("key visible in encoded command line")
	}
	got, err := decodeCmdline(s)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, args) {
		t.Fatalf("got %q, want %q", got, args)
	}
}

func TestParseMethods(t *testing.T) {
	for in, want := range map[string]int{"both": 2, "BOTH": 2, "bbs": 1, "lcg": 1, "": 1} {
		ms, err := parseMethods(in)
		if err != nil || len(ms) != want {
			t.Errorf("parseMethods(%q) = %v, %v", in, ms, err)
		}
	}
}

// withoutTerminal points the key prompt at a stdin that is not a terminal.
func withoutTerminal(t *testing.T) {
	t.Helper()
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	old := stdin
	stdin = f
	t.Cleanup(func() {
		stdin = old
		f.Close()
	})
}

func TestRunWithoutKey(t *testing.T) {
	withoutTerminal(t)
	_, err := execute(t, "run", "--plaintext=xyz", "--method=lcg")
	if !errors.Is(err, errNoKey) {
		t.Fatalf("err = %v, want errNoKey", err)
	}
}

func TestRunStartsFromDefaults(t *testing.T) {
	withoutTerminal(t)
	if _, err := execute(t, "run", "--key=abc", "--plaintext=xyz", "--method=lcg", "--seed=7"); err != nil {
		t.Fatal(err)
	}
	// neither the key nor the seed of the previous command line survives
	_, err := execute(t, "run", "--plaintext=xyz", "--method=lcg")
	if !errors.Is(err, errNoKey) {
		t.Fatalf("err = %v, want errNoKey", err)
	}
	if conf.IsSet("run.seed") {
		t.Fatal("seed carried over")
	}
	if f := runCmd.Flags().Lookup("key"); f.Changed || f.Value.String() != "" {
		t.Fatalf("key flag = %q, changed %v", f.Value.String(), f.Changed)
	}
}

func TestEnvKeysPerCommand(t *testing.T) {
	t.Setenv("TCIPHER_BBS_BITS", "raw")
	out, err := execute(t, "run", "--key=abc", "--plaintext=Hello, Stream Cipher!", "--method=bbs", "--seed=42")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `Decrypted BBS: "Hello, Stream Cipher!"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	t.Setenv("TCIPHER_BBS_BITS", "parity")
	out, err = execute(t, "bbs", "--seed=3", "--p=11", "--q=23", "--count=6")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[0 1 1 0 1 0]\n" {
		t.Fatalf("got %q", out)
	}

	// run has its own variable
	t.Setenv("TCIPHER_RUN_BBS_BITS", "raw")
	_, err = execute(t, "run", "--key=abc", "--plaintext=Hello, Stream Cipher!", "--method=bbs", "--seed=42")
	if !errors.Is(err, crypt.ErrCodepointOverflow) {
		t.Fatalf("err = %v, want ErrCodepointOverflow", err)
	}
}

func TestEnvDefaults(t *testing.T) {
	withoutTerminal(t)
	t.Setenv("TCIPHER_LCG_COUNT", "4")
	out, err := execute(t, "lcg")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[8 11 10 5]\n" {
		t.Fatalf("got %q", out)
	}

	t.Setenv("TCIPHER_RUN_KEY", "abc")
	t.Setenv("TCIPHER_RUN_METHOD", "lcg")
	out, err = execute(t, "run", "--plaintext=xyz")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "BBS") || !strings.Contains(out, `Decrypted LCG: "xyz"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigFile(t *testing.T) {
	withoutTerminal(t)
	path := filepath.Join(t.TempDir(), "tcipher.yaml")
	config := `run:
  key: abc
  seed: 7
  method: lcg
bbs:
  bits: lsb
  count: 6
`
	if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "bbs", "--config="+path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "[1 1 0 0 1 0]\n" {
		t.Fatalf("got %q", out)
	}

	// flags win over the file
	out, err = execute(t, "bbs", "--config="+path, "--bits=raw", "--count=2")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[9 81]\n" {
		t.Fatalf("got %q", out)
	}

	out, err = execute(t, "run", "--config="+path, "--plaintext=xyz")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "BBS") || !strings.Contains(out, `Decrypted LCG: "xyz"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	// the file is not read again without --config
	if _, err := execute(t, "run", "--plaintext=xyz"); !errors.Is(err, errNoKey) {
		t.Fatalf("err = %v, want errNoKey", err)
	}
}
