package repository

import (
	"context"
	"time"

	"bargain-market/internal/domain/cart"
	"bargain-market/internal/infra"
	sqlc "bargain-market/internal/infra/sqlc/generated"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	ClearCart(ctx context.Context, db sqlc.DBTX, buyerID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
}

func NewCartRepository(queries CartWriteQueries) *CartRepository {
	return &CartRepository{queries: queries}
}

func (r *CartRepository) SetQuantity(ctx context.Context, tx sqlc.DBTX, buyerID uuid.UUID, line cart.Line, now time.Time) error {
	err := r.queries.UpsertCartItem(ctx, tx, sqlc.UpsertCartItemParams{
		BuyerID:   buyerID,
		ProductID: line.ProductID(),
		Quantity:  int32(line.Quantity()), // #nosec G115 -- bounded by cart.MaxQuantity
		AddedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to upsert cart item", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) {
			return errs.Mark(wrapped, errs.ErrNotFound)
		}
		return wrapped
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, tx sqlc.DBTX, buyerID, productID uuid.UUID) error {
	affected, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{
		BuyerID:   buyerID,
		ProductID: productID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound), errs.ErrNotFound)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, tx sqlc.DBTX, buyerID uuid.UUID) error {
	if _, err := r.queries.ClearCart(ctx, tx, buyerID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
