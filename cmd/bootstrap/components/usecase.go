package components

import (
	"bargain-market/internal/pkg/clock"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/usecase"
	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BargainConfig {
		return cfg.Bargain
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBargainUseCase,
		commands.NewCartUseCase,
		commands.NewOrderUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBargainQueries,
		queries.NewPriceQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
