// Package cmd is for command line interactions with the moclo application
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jjtimmons/moclo/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// logger traces matching decisions, built before each command runs
	logger = zap.NewNop()

	// settingsFile is an optional YAML file overriding the default settings
	settingsFile string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "moclo",
	Short: `Resolve abstract genetic designs into MoClo plasmids.
Pick plasmids from a library whose fusion sites chain into a backbone`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Setup(settingsFile); err != nil {
			return err
		}

		conf, err := config.New()
		if err != nil {
			return err
		}

		if logger, err = newLogger(conf.Verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// newLogger logs info and above to stderr, or everything if verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return c.Build()
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return c.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "YAML settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every matching decision to stderr")
	RootCmd.PersistentFlags().StringP("fusion-sites", "f", "", "fusion site table, name to sequence <YAML>")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("fusion-sites", RootCmd.PersistentFlags().Lookup("fusion-sites"))
}
