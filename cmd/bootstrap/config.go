package bootstrap

import (
	"log/slog"

	"bargain-market/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// Secrets and credentials stay out of the log.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"redis_enabled", cfg.Redis.Addr != "",
		"jwt_duration", cfg.JWT.Duration,
		"conflict_retries", cfg.Bargain.ConflictRetries,
	)
}
