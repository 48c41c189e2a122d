package cmd

import (
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// conf is rebuilt by every Run, so nothing read from a config file or
	// the environment outlives one command line.
	conf = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tcipher",
	Short: "BBS/LCG stream cipher.",
	Long: `BBS/LCG stream cipher.
Repo: https://github.com/tutils/tcipher
Encrypt a plaintext with a Blum-Blum-Shub and a linear congruential keystream, For example:
  tcipher run --key=816559 --plaintext="Hello, Stream Cipher!"
  tcipher bbs --seed=3 --p=11 --q=23 --count=30 --bits=raw
  tcipher lcg --seed=1 --a=5 --c=3 --m=16 --count=16`,
}

const (
	prefix    = "@"
	envPrefix = "tcipher"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		args, err := decodeCmdline(os.Args[1][1:])
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		os.Args = append(os.Args[:1], args...)
	} else if len(os.Args) >= 2 {
		if s, err := encodeCmdline(os.Args[1:]); err == nil {
			log.Println(prefix + s)
		}
	}

	if err := Run(os.Args[1:]); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// Run executes the command line args without touching os.Args. Flags start
// from their defaults on every call.
func Run(args []string) error {
	resetFlags(rootCmd)
	conf = viper.New()
	for _, b := range bindings {
		if err := conf.BindPFlag(b.key, b.cmd.Flags().Lookup(b.name)); err != nil {
			return err
		}
	}

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

type binding struct {
	key  string
	cmd  *cobra.Command
	name string
}

var bindings []binding

// bindFlags binds each named flag of cmd to the config key "<section>.<name>".
// Keys and their TCIPHER_<SECTION>_<NAME> variables are unique per command.
func bindFlags(cmd *cobra.Command, section string, names ...string) {
	for _, name := range names {
		bindings = append(bindings, binding{key: section + "." + name, cmd: cmd, name: name})
	}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tcipher.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		conf.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".tcipher" (without extension).
		conf.AddConfigPath(home)
		conf.SetConfigName(".tcipher")
		conf.SetConfigType("yaml")
	}

	// TCIPHER_RUN_KEY, TCIPHER_BBS_SEED, ...
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	conf.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := conf.ReadInConfig(); err == nil {
		log.Println("Using config file:", conf.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Println(err)
	}
}
