package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benjaminschreck/go-cvfill/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cvfill",
	Short: "Fill CV templates from candidate resumes",
	Long: `cvfill extracts structured data from candidate CVs with the Claude API
and fills it into a company .docx template: placeholder tokens are replaced,
unused sections and table rows removed, and the house typography applied.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.cvfill/config.json)")
}

// loadConfig loads the layered configuration honoring the --config flag.
func loadConfig() (config.Config, error) {
	return config.Load(configFile)
}

// newLogger builds the process logger. --verbose forces a development
// logger at debug level regardless of the configured level.
func newLogger(level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
