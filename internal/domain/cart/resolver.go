package cart

import (
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Resolve prices every line from one snapshot: the ledger price when the
// buyer holds one for the product, otherwise the catalog price. It never
// produces a third value, and it rejects carts whose total overflows.
func Resolve(lines []Line, ledger pricing.Ledger, catalog map[uuid.UUID]pricing.Money) ([]PricedLine, error) {
	out := make([]PricedLine, 0, len(lines))
	for _, l := range lines {
		if rp, ok := ledger.Lookup(l.productID); ok {
			threadID := rp.SourceThreadID()
			out = append(out, PricedLine{
				ProductID:      l.productID,
				Quantity:       l.quantity,
				UnitPrice:      rp.Price(),
				Source:         SourceBargain,
				SourceThreadID: &threadID,
			})
			continue
		}

		price, ok := catalog[l.productID]
		if !ok {
			return nil, errs.WithKind(errs.ErrNotFound, "product %s not in catalog", l.productID)
		}
		out = append(out, PricedLine{
			ProductID: l.productID,
			Quantity:  l.quantity,
			UnitPrice: price,
			Source:    SourceCatalog,
		})
	}
	if _, err := Total(out); err != nil {
		return nil, err
	}
	return out, nil
}
