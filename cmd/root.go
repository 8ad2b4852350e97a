// Package cmd holds the fitquest command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-api/fitquest"
	"github.com/fitquest/fitquest-api/fitquest/logger"
)

var (
	version = "dev"
	commit  = "unknown"

	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "fitquest",
	Short:         "FitQuest game API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
}

// SetVersion records the build metadata reported by the health check and startup log.
func SetVersion(v, c string) {
	version, commit = v, c
	rootCmd.Version = fmt.Sprintf("%s (%s)", v, c)
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfig reads the config file and installs the process logger.
func loadConfig() (*fitquest.Config, error) {
	cfg, err := fitquest.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger.Setup("fitquest", cfg.Log)
	slog.Info("Configuration loaded successfully", slog.String("path", configPath))
	return cfg, nil
}
