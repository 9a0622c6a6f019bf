package bootstrap

import (
	"context"
	"log/slog"

	"bargain-market/internal/infra/notify"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotificationDispatcher,
	),
)

// NewNotificationDispatcher falls back to log output when REDIS_ADDR is unset.
func NewNotificationDispatcher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.NotificationDispatcher {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, bargain events go to the log")
		return notify.NewLogDispatcher(logger)
	}

	client := notify.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Dispatch failures are non-fatal; keep serving.
				logger.Warn("Redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return notify.NewRedisDispatcher(client, cfg.Redis)
}
