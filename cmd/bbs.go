package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tutils/tcipher/crypt/bbs"
)

// bbsCmd represents the bbs command
var bbsCmd = &cobra.Command{
	Use:   "bbs",
	Short: "Print a Blum-Blum-Shub sequence",
	Long: `Print values of the Blum-Blum-Shub generator, For example:
  tcipher bbs --seed=3 --p=11 --q=23 --count=30 --bits=raw`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := bbs.ParseMethod(conf.GetString("bbs.bits"))
		if err != nil {
			return err
		}
		g, err := bbs.New(conf.GetUint64("bbs.seed"), conf.GetUint64("bbs.p"), conf.GetUint64("bbs.q"))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), g.Take(conf.GetInt("bbs.count"), m))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bbsCmd)

	flags := bbsCmd.Flags()
	flags.Uint64("seed", 3, "seed x0")
	flags.Uint64("p", 11, "prime p, congruent to 3 mod 4")
	flags.Uint64("q", 23, "prime q, congruent to 3 mod 4")
	flags.IntP("count", "n", 30, "number of values")
	flags.String("bits", "raw", "extraction: least_significant_bit, even_parity_bit or raw")
	bindFlags(bbsCmd, "bbs", "seed", "p", "q", "count", "bits")
}
