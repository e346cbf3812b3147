package app

import (
	"context"

	"protettorato/internal/config"
	"protettorato/internal/db"
	"protettorato/internal/logger"
)

type Infra struct {
	DB *db.DB
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	database, err := db.Open(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		return nil, err
	}

	logger.Info("database ready", map[string]any{
		"max_conns": cfg.DatabaseMaxConns,
	})

	return &Infra{DB: database}, nil
}
