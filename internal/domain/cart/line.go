package cart

import (
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxQuantity = 999

var ErrInvalidQuantity = errs.WithKind(errs.ErrDomainValidation, "quantity must be between 1 and 999")

type Line struct {
	productID uuid.UUID
	quantity  int
}

func NewLine(productID uuid.UUID, quantity int) (Line, error) {
	if productID == uuid.Nil {
		return Line{}, errs.WithKind(errs.ErrDomainValidation, "cart line requires a product")
	}
	if quantity < 1 || quantity > MaxQuantity {
		return Line{}, ErrInvalidQuantity
	}
	return Line{productID: productID, quantity: quantity}, nil
}

func (l Line) ProductID() uuid.UUID { return l.productID }
func (l Line) Quantity() int        { return l.quantity }

type PriceSource string

const (
	SourceCatalog PriceSource = "catalog"
	SourceBargain PriceSource = "bargain"
)

func (s PriceSource) String() string {
	return string(s)
}

// PricedLine carries the effective unit price chosen for a line.
type PricedLine struct {
	ProductID      uuid.UUID
	Quantity       int
	UnitPrice      pricing.Money
	Source         PriceSource
	SourceThreadID *uuid.UUID
}

func (p PricedLine) LineTotal() (pricing.Money, error) {
	return p.UnitPrice.Mul(p.Quantity)
}

// Total is the exact sum of the line totals, or ErrInvalidPrice when a line
// or the sum does not fit in Money.
func Total(lines []PricedLine) (pricing.Money, error) {
	var total pricing.Money
	for _, l := range lines {
		lineTotal, err := l.LineTotal()
		if err != nil {
			return pricing.Money{}, errs.Wrapf(err, "line total for product %s", l.ProductID)
		}
		if total, err = total.Add(lineTotal); err != nil {
			return pricing.Money{}, errs.Wrap(err, "cart total")
		}
	}
	return total, nil
}

// ProductIDs returns the distinct product ids in first-seen order.
func ProductIDs(lines []Line) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.productID]; ok {
			continue
		}
		seen[l.productID] = struct{}{}
		ids = append(ids, l.productID)
	}
	return ids
}
