package queries

import (
	"context"

	"bargain-market/internal/domain/cart"
	"bargain-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type CartQueries interface {
	// PriceLines prices arbitrary lines without touching the stored cart
	PriceLines(ctx context.Context, buyerID uuid.UUID, lines []CartLineInput) (*PricedCartView, error)
	// GetCart prices the buyer's stored cart
	GetCart(ctx context.Context, buyerID uuid.UUID) (*PricedCartView, error)
}

type cartQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCartQueries(uow shared.UnitOfWork) CartQueries {
	return &cartQueriesImpl{uow: uow}
}

func (q *cartQueriesImpl) PriceLines(ctx context.Context, buyerID uuid.UUID, input []CartLineInput) (*PricedCartView, error) {
	lines := make([]cart.Line, 0, len(input))
	for _, in := range input {
		line, err := cart.NewLine(in.ProductID, in.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	var view *PricedCartView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		priced, err := shared.PriceLines(ctx, reads, buyerID, lines)
		if err != nil {
			return err
		}
		view, err = pricedCartView(buyerID, priced)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, buyerID uuid.UUID) (*PricedCartView, error) {
	var view *PricedCartView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		lines, err := reads.CartLines(ctx, buyerID)
		if err != nil {
			return err
		}
		priced, err := shared.PriceLines(ctx, reads, buyerID, lines)
		if err != nil {
			return err
		}
		view, err = pricedCartView(buyerID, priced)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func pricedCartView(buyerID uuid.UUID, priced shared.PricedCart) (*PricedCartView, error) {
	total, err := cart.Total(priced.Lines)
	if err != nil {
		return nil, err
	}
	view := &PricedCartView{
		BuyerID: buyerID,
		Lines:   make([]PricedLineView, len(priced.Lines)),
		Total:   total.Amount(),
	}
	for i, l := range priced.Lines {
		product := priced.Products[l.ProductID]
		lineTotal, err := l.LineTotal()
		if err != nil {
			return nil, err
		}
		view.Lines[i] = PricedLineView{
			ProductID:      l.ProductID,
			ProductName:    product.Name,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice.Amount(),
			CatalogPrice:   product.Price.Amount(),
			Source:         l.Source.String(),
			SourceThreadID: l.SourceThreadID,
			LineTotal:      lineTotal.Amount(),
		}
	}
	return view, nil
}
