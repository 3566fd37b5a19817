package cmd

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/tperm/entropy"
)

var (
	cfgFile   string
	cfg       = viper.New()
	logLevel  string
	pprofAddr string

	// Shared flags
	sourceName string
	maxFlag    string
	seedFlag   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tperm [max] [seed]",
	Short: "Shuffled, non-repeating integer ranges.",
	Long: `Enumerate [0, max] in a random order without repeats, in constant memory.
Repo: https://github.com/tutils/tperm
Print value/position pairs, or stream raw binary. For example:
  tperm 1000 42
  tperm 0xffffffff 7 -b | head -c 4096 > sample.bin
  tperm 1000 42 -n 5 --checkpoint
  tperm --resume @<token printed by --checkpoint>`,
	Args:              cobra.MaximumNArgs(2),
	PersistentPreRunE: initConfig,
	RunE:              runGenerate,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := Run(os.Args[1:]); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// Run executes the command line args, without the program name, and returns
// the command's error instead of exiting.
func Run(args []string) error {
	if args == nil {
		// cobra reads os.Args when no args are set
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tperm.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&pprofAddr, "pprof", "", "serve net/http/pprof on this address")
	flags.StringVarP(&sourceName, "source", "s", entropy.DefaultName,
		"entropy source ("+strings.Join(entropy.Names(), ", ")+")")
	flags.StringVar(&maxFlag, "max", "", "inclusive upper bound, when not given as an argument (default 2^64-1)")
	flags.StringVar(&seedFlag, "seed", "", "source seed, when not given as an argument (default: current time)")

	initGenerateFlags(rootCmd)
}

// initConfig reads in config file and ENV variables if set, then layers the
// command line on top.
func initConfig(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if pprofAddr != "" {
		go func() {
			logrus.WithError(http.ListenAndServe(pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	cfg = viper.New()
	if cfgFile != "" {
		// Use config file from the flag.
		cfg.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".tperm" (without extension).
		cfg.AddConfigPath(home)
		cfg.SetConfigName(".tperm")
	}

	cfg.SetEnvPrefix("tperm")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := cfg.ReadInConfig(); err == nil {
		logrus.WithField("file", cfg.ConfigFileUsed()).Info("using config file")
	} else if cfgFile != "" {
		return fmt.Errorf("read config: %w", err)
	}

	return cfg.BindPFlags(cmd.Flags())
}
