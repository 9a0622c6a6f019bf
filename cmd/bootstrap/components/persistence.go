package components

import (
	"bargain-market/internal/infra/readstore"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Bargain
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BargainViewQueries)),
		),
		fx.Annotate(
			readstore.NewBargainReadStore,
			fx.As(new(queries.BargainReadStore)),
		),
		// Ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LedgerViewQueries)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderViewQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
