package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/tutils/tcipher/crypt"
	"github.com/tutils/tcipher/crypt/bbs"
	"github.com/tutils/tcipher/crypt/stream"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Encrypt and decrypt a plaintext",
	Long: `Stretch the key to the plaintext, then encrypt and decrypt with the BBS and LCG keystreams, For example:
  tcipher run --key=816559 --plaintext="Hello, Stream Cipher!"
  tcipher run --key=816559 --method=lcg --seed=42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plaintext := conf.GetString("run.plaintext")
		methods, err := parseMethods(conf.GetString("run.method"))
		if err != nil {
			return err
		}
		bits, err := bbs.ParseMethod(conf.GetString("run.bbs-bits"))
		if err != nil {
			return err
		}

		key := conf.GetString("run.key")
		if key == "" {
			if key, err = readKey(cmd); err != nil {
				return err
			}
		}
		// only the key's length reaches the cipher
		key, err = stream.Stretch(key, utf8.RuneCountInString(plaintext))
		if err != nil {
			return err
		}

		opts := []stream.Option{stream.WithBBSMethod(bits)}
		if conf.IsSet("run.seed") {
			opts = append(opts, stream.WithRandSource(crypt.NewLCGSource(conf.GetInt64("run.seed"))))
		}
		c, err := stream.New(key, opts...)
		if err != nil {
			return err
		}
		p := c.Params()
		log.Printf("cipher %s: len=%d lcg(seed=%d, a=%d, c=%d, m=%d) bbs(seed=%d, p=%d, q=%d, bits=%s)",
			c.ID(), c.Len(), p.LCGSeed, p.LCGMultiplier, p.LCGIncrement, p.LCGModulus,
			p.BBSSeed, p.BBSP, p.BBSQ, p.BBSMethod)

		out := cmd.OutOrStdout()
		ciphertexts := make(map[stream.Method]string, len(methods))
		for _, m := range methods {
			start := time.Now()
			ct, err := c.Encrypt(plaintext, m)
			if err != nil {
				return fmt.Errorf("encrypt %s: %w", m, err)
			}
			ciphertexts[m] = ct
			fmt.Fprintf(out, "Encrypted %s: %q\n", m, ct)
			fmt.Fprintf(out, "%s Encryption Time: %s\n", m, time.Since(start))
		}
		for _, m := range methods {
			start := time.Now()
			pt, err := c.Decrypt(ciphertexts[m], m)
			if err != nil {
				return fmt.Errorf("decrypt %s: %w", m, err)
			}
			fmt.Fprintf(out, "Decrypted %s: %q\n", m, pt)
			fmt.Fprintf(out, "%s Decryption Time: %s\n", m, time.Since(start))
		}
		return nil
	},
}

func parseMethods(s string) ([]stream.Method, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []stream.Method{stream.BBS, stream.LCG}, nil
	}
	m, err := stream.ParseMethod(s)
	if err != nil {
		return nil, err
	}
	return []stream.Method{m}, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.StringP("key", "k", "", "key used in stream cipher, prompted for when empty")
	flags.StringP("plaintext", "p", "Hello, Stream Cipher!", "plaintext to encrypt")
	flags.StringP("method", "m", "both", "keystream: bbs, lcg or both")
	flags.String("bbs-bits", "least_significant_bit", "BBS extraction: least_significant_bit, even_parity_bit or raw")
	flags.Int64("seed", 0, "seed for generator parameters (random when unset)")
	bindFlags(runCmd, "run", "key", "plaintext", "method", "bbs-bits", "seed")
}
