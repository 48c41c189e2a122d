package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tutils/tcipher/crypt/lcg"
)

// lcgCmd represents the lcg command
var lcgCmd = &cobra.Command{
	Use:   "lcg",
	Short: "Print a linear congruential sequence",
	Long: `Print values of the linear congruential generator, reduced mod 128, For example:
  tcipher lcg --seed=1 --a=5 --c=3 --m=16 --count=16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := lcg.New(conf.GetUint64("lcg.seed"), conf.GetUint64("lcg.a"), conf.GetUint64("lcg.c"), conf.GetUint64("lcg.m"))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), g.Take(conf.GetInt("lcg.count")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lcgCmd)

	flags := lcgCmd.Flags()
	flags.Uint64("seed", 1, "seed")
	flags.Uint64("a", 5, "multiplier")
	flags.Uint64("c", 3, "increment")
	flags.Uint64("m", 16, "modulus")
	flags.IntP("count", "n", 16, "number of values")
	bindFlags(lcgCmd, "lcg", "seed", "a", "c", "m", "count")
}
