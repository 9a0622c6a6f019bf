package readstore

import (
	"context"

	"bargain-market/internal/infra"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/pgconv"
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogViewQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return productViewFromRow(row), nil
}

// FindByIDs silently skips ids that do not exist.
func (r *CatalogReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ProductView, error) {
	if len(ids) == 0 {
		return []*queries.ProductView{}, nil
	}
	rows, err := r.queries.ListProductsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by ids", err)
	}
	result := make([]*queries.ProductView, len(rows))
	for i, row := range rows {
		result[i] = productViewFromRow(row)
	}
	return result, nil
}

func productViewFromRow(row sqlc.Products) *queries.ProductView {
	return &queries.ProductView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		PriceAmount: row.PriceAmount,
		Stock:       row.Stock,
	}
}
