// Package cli holds the setup shared by every command-line tool.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/yt-subtools/internal/config"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
	"github.com/spf13/cobra"
)

// Globals are the flags every tool accepts
type Globals struct {
	ConfigPath string
	EnvPath    string
	LogLevel   string
}

// Register adds the global flags to cmd
func (g *Globals) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "config.yaml", "YAML config file (defaults apply when missing)")
	cmd.PersistentFlags().StringVar(&g.EnvPath, "env", "", "environment file with API keys (default .env when present)")
	cmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "", "debug, info, warn or error (overrides config)")
}

// Setup loads the environment file and config, then builds the logger
func (g *Globals) Setup() (*config.Config, logger.Logger, error) {
	if err := config.LoadEnv(g.EnvPath); err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadOrDefault(g.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	return cfg, logger.New(cfg.Logging.Level), nil
}

// Execute runs cmd with a context cancelled on SIGINT/SIGTERM and exits
// non-zero on error
func Execute(cmd *cobra.Command) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// RequireFile fails when path does not exist or is a directory
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
