package shared

import (
	"context"

	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// PricedCart is the output of one resolver pass together with the catalog
// rows it was computed from.
type PricedCart struct {
	Lines    []cart.PricedLine
	Products map[uuid.UUID]ProductSnapshot
}

func (p PricedCart) Stock() map[uuid.UUID]int {
	stock := make(map[uuid.UUID]int, len(p.Products))
	for id, prod := range p.Products {
		stock[id] = prod.Stock
	}
	return stock
}

// PriceLines reads catalog and ledger through reads and resolves every line
// once. Callers run it inside a snapshot so both reads agree.
func PriceLines(ctx context.Context, reads CommandReads, buyerID uuid.UUID, lines []cart.Line) (PricedCart, error) {
	if len(lines) == 0 {
		return PricedCart{Lines: []cart.PricedLine{}, Products: map[uuid.UUID]ProductSnapshot{}}, nil
	}

	ids := cart.ProductIDs(lines)
	products, err := reads.ProductsByIDs(ctx, ids)
	if err != nil {
		return PricedCart{}, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return PricedCart{}, errs.WithKind(errs.ErrNotFound, "product %s not found", id)
		}
	}

	ledger, err := reads.LedgerFor(ctx, buyerID, ids)
	if err != nil {
		return PricedCart{}, err
	}

	catalog := make(map[uuid.UUID]pricing.Money, len(products))
	for id, p := range products {
		catalog[id] = p.Price
	}

	priced, err := cart.Resolve(lines, ledger, catalog)
	if err != nil {
		return PricedCart{}, err
	}
	return PricedCart{Lines: priced, Products: products}, nil
}
