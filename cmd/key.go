package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	errNoKey = errors.New("--key is required when stdin is not a terminal")

	stdin = os.Stdin
)

// readKey prompts for the key without echo.
func readKey(cmd *cobra.Command) (string, error) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoKey
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Key: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
