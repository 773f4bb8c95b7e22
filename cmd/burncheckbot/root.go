package main

import (
	"os"

	"github.com/IT-Nick/burncheckbot/internal/infra/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "burncheckbot",
		Short:         "Telegram bot with a burnout self-check test",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to YAML config (overrides CONFIG_PATH env var)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newFontsCmd())
	root.AddCommand(newStatsCmd())

	return root
}

// loadConfig читает конфигурацию: --config, затем CONFIG_PATH
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return config.LoadConfig(path)
}
