package repository

import (
	"context"

	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/infra"
	"bargain-market/internal/infra/repository/converter"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type LedgerWriteQueries interface {
	UpsertResolvedPrice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertResolvedPriceParams) error
	DeleteResolvedPrice(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteResolvedPriceParams) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

// Set overwrites any earlier entry for the same (buyer, product).
func (r *LedgerRepository) Set(ctx context.Context, tx sqlc.DBTX, rp *pricing.ResolvedPrice) error {
	if err := r.queries.UpsertResolvedPrice(ctx, tx, converter.ResolvedPriceToUpsertParams(rp)); err != nil {
		return infra.WrapRepoErr("failed to upsert resolved price", err)
	}
	return nil
}

func (r *LedgerRepository) Clear(ctx context.Context, tx sqlc.DBTX, buyerID, productID uuid.UUID) error {
	affected, err := r.queries.DeleteResolvedPrice(ctx, tx, sqlc.DeleteResolvedPriceParams{
		BuyerID:   buyerID,
		ProductID: productID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete resolved price", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("resolved price not found", nil, infra.KindNotFound), errs.ErrNotFound)
	}
	return nil
}
