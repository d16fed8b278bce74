// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nexos-labs/nexos-go"
	"github.com/nexos-labs/nexos-go/config"
	"github.com/nexos-labs/nexos-go/core"
)

var (
	// Global flags
	cfgFile    string
	jsonOutput bool
	verbose    bool
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "nexos",
	Short: "Nexos - Nexos AI API command line client",
	Long: `Nexos is a command-line client for the Nexos AI API.

Use it to run chat completions, inspect the model catalog, and manage
team API keys. Credentials come from ~/.nexos/config.yaml, a local .env
file, or NEXOS_* environment variables.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.nexos/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir := os.Getenv("HOME")
	if homeDir == "" {
		homeDir = os.Getenv("USERPROFILE")
	}
	if homeDir == "" {
		return "config.yaml"
	}
	return filepath.Join(homeDir, ".nexos", "config.yaml")
}

// newClient loads the configuration and builds an SDK client. Verbose mode
// attaches an slog-backed telemetry hook.
func newClient() (*nexos.Client, error) {
	path := cfgFile
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []core.TransportOption
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, core.WithTelemetry(core.NewSlogTelemetryHook(logger)))
	}
	return nexos.NewClient(cfg, opts...)
}
