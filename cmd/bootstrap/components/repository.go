package components

import (
	"bargain-market/internal/infra/uow"
	"bargain-market/internal/usecase/shared"

	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
