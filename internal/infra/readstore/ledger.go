package readstore

import (
	"context"

	"bargain-market/internal/infra"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type LedgerViewQueries interface {
	GetResolvedPrice(ctx context.Context, db sqlc.DBTX, arg sqlc.GetResolvedPriceParams) (sqlc.ResolvedPrices, error)
	ListResolvedPricesForProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResolvedPricesForProductsParams) ([]sqlc.ResolvedPrices, error)
}

type LedgerReadStore struct {
	queries LedgerViewQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerViewQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerReadStore) Find(ctx context.Context, buyerID, productID uuid.UUID) (*queries.ResolvedPriceView, error) {
	row, err := r.queries.GetResolvedPrice(ctx, r.db, sqlc.GetResolvedPriceParams{
		BuyerID:   buyerID,
		ProductID: productID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resolved price not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resolved price", err)
	}
	return resolvedPriceViewFromRow(row), nil
}

func (r *LedgerReadStore) FindForProducts(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]*queries.ResolvedPriceView, error) {
	if len(productIDs) == 0 {
		return []*queries.ResolvedPriceView{}, nil
	}
	rows, err := r.queries.ListResolvedPricesForProducts(ctx, r.db, sqlc.ListResolvedPricesForProductsParams{
		BuyerID:    buyerID,
		ProductIds: productIDs,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resolved prices", err)
	}
	result := make([]*queries.ResolvedPriceView, len(rows))
	for i, row := range rows {
		result[i] = resolvedPriceViewFromRow(row)
	}
	return result, nil
}

func resolvedPriceViewFromRow(row sqlc.ResolvedPrices) *queries.ResolvedPriceView {
	return &queries.ResolvedPriceView{
		BuyerID:        row.BuyerID,
		ProductID:      row.ProductID,
		PriceAmount:    row.PriceAmount,
		SourceThreadID: row.SourceThreadID,
		ResolvedAt:     pgconv.TimeFromPgtype(row.ResolvedAt),
	}
}
