package commands

import (
	"context"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/order"
	"bargain-market/internal/domain/user"
	"bargain-market/internal/pkg/clock"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

type MaterializeOrderRequest struct {
	Lines          []OrderLineRequest
	LinkedThreadID *uuid.UUID
	PaymentMethod  string
}

type CheckoutRequest struct {
	LinkedThreadID *uuid.UUID
	PaymentMethod  string
}

type OrderResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	TotalAmount int64
	Status      order.Status
}

const (
	OrderActionAdvance = "advance"
	OrderActionCancel  = "cancel"
)

type OrderCommands interface {
	Materialize(ctx context.Context, req MaterializeOrderRequest, buyerID uuid.UUID) (*OrderResult, error)
	Checkout(ctx context.Context, req CheckoutRequest, buyerID uuid.UUID) (*OrderResult, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, action string, actorID uuid.UUID, actorRole user.Role) (*OrderResult, error)
}

type orderUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{uow: uow, clock: clk}
}

// Materialize prices the given lines and freezes them into an order. Prices,
// stock and the linked thread are all read from one snapshot.
func (uc *orderUseCaseImpl) Materialize(ctx context.Context, req MaterializeOrderRequest, buyerID uuid.UUID) (*OrderResult, error) {
	payment := order.PaymentMethod(req.PaymentMethod)
	if !payment.IsValid() {
		return nil, order.ErrInvalidPaymentMethod
	}
	lines := make([]cart.Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		line, err := cart.NewLine(l.ProductID, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	var result *OrderResult
	err := uc.uow.WithinSnapshot(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.materialize(ctx, tx, buyerID, lines, req.LinkedThreadID, payment)
		if err != nil {
			return err
		}
		result = resultFromOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Checkout materializes the buyer's stored cart and empties it in the same
// transaction.
func (uc *orderUseCaseImpl) Checkout(ctx context.Context, req CheckoutRequest, buyerID uuid.UUID) (*OrderResult, error) {
	payment := order.PaymentMethod(req.PaymentMethod)
	if !payment.IsValid() {
		return nil, order.ErrInvalidPaymentMethod
	}

	var result *OrderResult
	err := uc.uow.WithinSnapshot(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.Reads().CartLines(ctx, buyerID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return errs.WithKind(order.ErrEmptyCart, "cart of buyer %s is empty", buyerID)
		}

		o, err := uc.materialize(ctx, tx, buyerID, lines, req.LinkedThreadID, payment)
		if err != nil {
			return err
		}
		if err := tx.Carts().Clear(ctx, tx.DB(), buyerID); err != nil {
			return err
		}
		result = resultFromOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *orderUseCaseImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, action string, actorID uuid.UUID, actorRole user.Role) (*OrderResult, error) {
	if action != OrderActionAdvance && action != OrderActionCancel {
		return nil, errs.WithKind(errs.ErrDomainValidation, "unknown order action %q", action)
	}

	var result *OrderResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().LockForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}

		switch {
		case actorRole.IsAdmin():
		case action == OrderActionCancel && o.BuyerID() == actorID:
		default:
			return errs.WithKind(errs.ErrUnauthorized, "user %s cannot %s order %s", actorID, action, orderID)
		}

		expected := o.Status()
		now := uc.clock.Now()
		if action == OrderActionAdvance {
			err = o.Advance(now)
		} else {
			err = o.Cancel(now)
		}
		if err != nil {
			return err
		}
		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o, expected); err != nil {
			return err
		}
		result = resultFromOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *orderUseCaseImpl) materialize(
	ctx context.Context,
	tx shared.Tx,
	buyerID uuid.UUID,
	lines []cart.Line,
	linkedThreadID *uuid.UUID,
	payment order.PaymentMethod,
) (*order.Order, error) {
	priced, err := shared.PriceLines(ctx, tx.Reads(), buyerID, lines)
	if err != nil {
		return nil, err
	}

	linked, err := uc.linkedThread(ctx, tx.Reads(), buyerID, priced.Lines, linkedThreadID)
	if err != nil {
		return nil, err
	}

	o, err := order.Materialize(buyerID, priced.Lines, priced.Stock(), linked, payment, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		return nil, err
	}
	return o, nil
}

// linkedThread validates an explicit thread reference, or falls back to the
// thread behind the first bargain-priced line.
func (uc *orderUseCaseImpl) linkedThread(
	ctx context.Context,
	reads shared.CommandReads,
	buyerID uuid.UUID,
	lines []cart.PricedLine,
	requested *uuid.UUID,
) (*uuid.UUID, error) {
	if requested == nil {
		for _, l := range lines {
			if l.Source == cart.SourceBargain && l.SourceThreadID != nil {
				id := *l.SourceThreadID
				return &id, nil
			}
		}
		return nil, nil
	}

	th, err := reads.ThreadByID(ctx, *requested)
	if err != nil {
		return nil, err
	}
	if th.BuyerID != buyerID || th.Status != bargain.StatusAccepted {
		return nil, errs.WithKind(errs.ErrNotFound, "no accepted thread %s for buyer %s", *requested, buyerID)
	}
	for _, l := range lines {
		if l.ProductID == th.ProductID {
			id := th.ID
			return &id, nil
		}
	}
	return nil, errs.WithKind(errs.ErrInvalidOffer, "thread %s does not cover any ordered product", th.ID)
}

func resultFromOrder(o *order.Order) *OrderResult {
	return &OrderResult{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		TotalAmount: o.TotalAmount().Amount(),
		Status:      o.Status(),
	}
}
