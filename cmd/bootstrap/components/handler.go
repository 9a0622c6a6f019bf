package components

import (
	"bargain-market/internal/handler"
	"bargain-market/internal/handler/api"
	"bargain-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewBargainHandler,
		api.NewPriceHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
