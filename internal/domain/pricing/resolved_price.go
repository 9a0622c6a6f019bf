package pricing

import (
	"time"

	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPrice = errs.ErrInvalidPrice

// ResolvedPrice is the negotiated unit price for one (buyer, product) pair.
type ResolvedPrice struct {
	buyerID        uuid.UUID
	productID      uuid.UUID
	price          Money
	sourceThreadID uuid.UUID
	resolvedAt     time.Time
}

func NewResolvedPrice(buyerID, productID uuid.UUID, price Money, sourceThreadID uuid.UUID, now time.Time) (*ResolvedPrice, error) {
	if !price.IsPositive() {
		return nil, errs.WithKind(ErrInvalidPrice, "resolved price must be positive: %d", price.Amount())
	}
	if buyerID == uuid.Nil || productID == uuid.Nil || sourceThreadID == uuid.Nil {
		return nil, errs.WithKind(errs.ErrDomainValidation, "resolved price requires buyer, product and thread ids")
	}
	return &ResolvedPrice{
		buyerID:        buyerID,
		productID:      productID,
		price:          price,
		sourceThreadID: sourceThreadID,
		resolvedAt:     now,
	}, nil
}

func ReconstructResolvedPrice(buyerID, productID uuid.UUID, price Money, sourceThreadID uuid.UUID, resolvedAt time.Time) *ResolvedPrice {
	return &ResolvedPrice{
		buyerID:        buyerID,
		productID:      productID,
		price:          price,
		sourceThreadID: sourceThreadID,
		resolvedAt:     resolvedAt,
	}
}

func (r *ResolvedPrice) BuyerID() uuid.UUID        { return r.buyerID }
func (r *ResolvedPrice) ProductID() uuid.UUID      { return r.productID }
func (r *ResolvedPrice) Price() Money              { return r.price }
func (r *ResolvedPrice) SourceThreadID() uuid.UUID { return r.sourceThreadID }
func (r *ResolvedPrice) ResolvedAt() time.Time     { return r.resolvedAt }

// Ledger is a point-in-time view of one buyer's resolved prices.
type Ledger struct {
	buyerID uuid.UUID
	entries map[uuid.UUID]*ResolvedPrice
}

// Entries belonging to other buyers are ignored.
func NewLedger(buyerID uuid.UUID, entries []*ResolvedPrice) Ledger {
	m := make(map[uuid.UUID]*ResolvedPrice, len(entries))
	for _, e := range entries {
		if e == nil || e.buyerID != buyerID {
			continue
		}
		m[e.productID] = e
	}
	return Ledger{buyerID: buyerID, entries: m}
}

func (l Ledger) BuyerID() uuid.UUID {
	return l.buyerID
}

func (l Ledger) Lookup(productID uuid.UUID) (*ResolvedPrice, bool) {
	e, ok := l.entries[productID]
	return e, ok
}

func (l Ledger) Len() int {
	return len(l.entries)
}
