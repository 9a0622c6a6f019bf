package commands

import (
	"context"

	"bargain-market/internal/domain/cart"
	"bargain-market/internal/pkg/clock"
	"bargain-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	SetItem(ctx context.Context, buyerID, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, buyerID, productID uuid.UUID) error
	Clear(ctx context.Context, buyerID uuid.UUID) error
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartUseCase(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{uow: uow, clock: clk}
}

// SetItem stores the quantity for a product, replacing any previous one.
// Prices are never stored on cart rows; they are resolved on read.
func (uc *cartUseCaseImpl) SetItem(ctx context.Context, buyerID, productID uuid.UUID, quantity int) error {
	line, err := cart.NewLine(productID, quantity)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, productID); err != nil {
			return err
		}
		return tx.Carts().SetQuantity(ctx, tx.DB(), buyerID, line, uc.clock.Now())
	})
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, buyerID, productID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Remove(ctx, tx.DB(), buyerID, productID)
	})
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, buyerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Clear(ctx, tx.DB(), buyerID)
	})
}
