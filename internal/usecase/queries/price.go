package queries

import (
	"context"

	"github.com/google/uuid"
)

type LedgerReadStore interface {
	Find(ctx context.Context, buyerID, productID uuid.UUID) (*ResolvedPriceView, error)
	FindForProducts(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]*ResolvedPriceView, error)
}

type PriceQueries interface {
	GetResolvedPrice(ctx context.Context, buyerID, productID uuid.UUID) (*ResolvedPriceView, error)
	ListResolvedPrices(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]*ResolvedPriceView, error)
}

type priceQueriesImpl struct {
	repo LedgerReadStore
}

func NewPriceQueries(repo LedgerReadStore) PriceQueries {
	return &priceQueriesImpl{repo: repo}
}

// GetResolvedPrice returns NotFound when no bargain price exists; the caller
// then pays the catalog price.
func (q *priceQueriesImpl) GetResolvedPrice(ctx context.Context, buyerID, productID uuid.UUID) (*ResolvedPriceView, error) {
	rp, err := q.repo.Find(ctx, buyerID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return rp, nil
}

func (q *priceQueriesImpl) ListResolvedPrices(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]*ResolvedPriceView, error) {
	if len(productIDs) == 0 {
		return []*ResolvedPriceView{}, nil
	}
	return q.repo.FindForProducts(ctx, buyerID, productIDs)
}
