package main

import (
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/config"
	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "rosterbot",
	Short:         "Monthly shift roster generator",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			// flags and the environment are enough without a .env file
			logger.Log.Debug(".env file not found")
		}

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger.Init(cfg.LogLevel, cfg.Environment)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.Error(err)
		return err
	}
	return nil
}
