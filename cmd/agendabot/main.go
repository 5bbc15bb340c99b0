// Package main implements the agendabot CLI: the Discord companion bot for a
// conference agenda and its operator commands.
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/agendabot/internal/config"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configPath is an optional YAML config file
	configPath string
	// envFile is loaded into the environment before config
	envFile string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agendabot",
	Short: "Conference agenda companion bot",
	Long: `agendabot runs a Discord bot for a conference agenda: browsing and
bookmarking sessions with reminders, live polls, moderated Q&A, check-ins and
attendee networking. Configuration comes from an optional YAML file, a .env
file and environment variables such as REDIS_ADDR and DISCORD_TOKEN.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(qrCmd)
}

// setup loads configuration and builds the logger shared by every command
func setup() (*config.Config, *zap.Logger, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}
