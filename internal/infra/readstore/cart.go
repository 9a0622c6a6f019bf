package readstore

import (
	"context"

	"bargain-market/internal/infra"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	ListCartItems(ctx context.Context, db sqlc.DBTX, buyerID uuid.UUID) ([]sqlc.CartItems, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) Items(ctx context.Context, buyerID uuid.UUID) ([]*queries.CartItemView, error) {
	rows, err := r.queries.ListCartItems(ctx, r.db, buyerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	result := make([]*queries.CartItemView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CartItemView{
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			AddedAt:   pgconv.TimeFromPgtype(row.AddedAt),
		}
	}
	return result, nil
}
