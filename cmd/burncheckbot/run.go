package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/IT-Nick/burncheckbot/internal/app"
	"github.com/IT-Nick/burncheckbot/internal/infra/logger"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the bot and the admin HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd)
		},
	}
}

func runBot(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("app starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	if err := a.ListenAndServe(ctx); err != nil {
		return err
	}

	log.Info().Msg("app stopped")
	return nil
}
