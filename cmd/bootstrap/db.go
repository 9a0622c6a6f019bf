package bootstrap

import (
	"context"
	"log/slog"

	"bargain-market/internal/infra/db"
	"bargain-market/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails fx startup.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool draining", "acquired", stat.AcquiredConns(), "total", stat.TotalConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
