// Package app implements the randstr commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/mormao/randstr/internal/config"
	"github.com/mormao/randstr/internal/logger"
)

var (
	configPath string // directory holding main.toml
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "randstr",
		Short: "randstr generates random strings from composable alphabets",
		Long: `randstr generates random strings whose characters are drawn uniformly
from an alphabet made of lowercase letters, digits, uppercase letters and underscore.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			applyFlags(cmd, &cfg)

			if err = config.Validate(&cfg); err != nil {
				return err
			}

			return logger.Init(cfg.Log)
		},
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "directory containing main.toml")
	rootCmd.PersistentFlags().Bool("digits", false, "include 0-9")
	rootCmd.PersistentFlags().Bool("upper", false, "include A-Z")
	rootCmd.PersistentFlags().Bool("lower", false, "include a-z")
	rootCmd.PersistentFlags().Bool("underscore", false, "include _")
	rootCmd.PersistentFlags().String("log-level", "", "override the configured log level")
}

// applyFlags overrides config values with flags set on the command line.
// Any category flag replaces the configured category selection.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("digits") || flags.Changed("upper") || flags.Changed("lower") || flags.Changed("underscore") {
		c.Alphabet.Digits, _ = flags.GetBool("digits")
		c.Alphabet.Upper, _ = flags.GetBool("upper")
		c.Alphabet.Lower, _ = flags.GetBool("lower")
		c.Alphabet.Underscore, _ = flags.GetBool("underscore")
	}

	if flags.Changed("log-level") {
		c.Log.LogLevel, _ = flags.GetString("log-level")
	}

	if flags.Lookup("length") != nil && flags.Changed("length") {
		c.Generator.Length, _ = flags.GetInt("length")
	}

	if flags.Lookup("count") != nil && flags.Changed("count") {
		c.Generator.Count, _ = flags.GetInt("count")
	}

	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		c.Generator.Seed, _ = flags.GetUint64("seed")
		c.Generator.Seeded = true
	}

	if flags.Lookup("unique") != nil && flags.Changed("unique") {
		c.Generator.Unique, _ = flags.GetBool("unique")
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
