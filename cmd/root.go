package cmd

import (
	"fmt"
	"os"

	"movie-grid/core/config"
	"movie-grid/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// envDir is the directory holding the optional .env file.
var envDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "movie-grid",
	Short: "Movie Grid Service",
	Long: `Movie Grid lays a sorted movie collection out on a rows x columns grid and
animates every change as delete, transpose and create phases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "Directory containing the .env file")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Execute runs RootCmd and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("Command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
