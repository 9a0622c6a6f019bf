package middleware

import (
	"log/slog"
	"slices"

	"bargain-market/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// corsConfig maps env settings onto gin-contrib/cors. A "*" origin switches to
// AllowAllOrigins, which browsers refuse to combine with credentials.
func corsConfig(cfg config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append([]string{requestIDHeader}, cfg.ExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, wildcardOrigin) {
		out.AllowAllOrigins = true
		out.AllowOrigins = nil
		out.AllowCredentials = false
	}
	return out
}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := corsConfig(cfg)
	slog.Info("cors configured",
		"origins", cfg.AllowOrigins,
		"all_origins", corsCfg.AllowAllOrigins,
		"credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}
