package app

import (
	"context"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// InitDatabase устанавливает подключение к базе данных.
// Если база не настроена, возвращает nil без ошибки: бот работает без архива и переопределений текстов.
func InitDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	dsn := cfg.DatabaseDSN()
	if dsn == "" {
		log.Info().Msg("database is not configured, result history disabled")
		return nil, nil
	}

	connConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	log.Info().Str("host", connConfig.ConnConfig.Host).Msg("database connected successfully")
	return db, nil
}
