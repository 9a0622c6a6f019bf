//go:build unit || e2e

package builder

import (
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/pricing"

	"github.com/google/uuid"
)

type BargainBuilder struct {
	BuyerID      uuid.UUID
	SellerID     uuid.UUID
	ProductID    uuid.UUID
	CatalogPrice int64
	Offer        int64
	Now          time.Time
}

func NewBargainBuilder() *BargainBuilder {
	return &BargainBuilder{
		BuyerID:      uuid.New(),
		SellerID:     uuid.New(),
		ProductID:    uuid.New(),
		CatalogPrice: 10000,
		Offer:        4000,
		Now:          time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BargainBuilder) With(mutate func(*BargainBuilder)) *BargainBuilder {
	mutate(b)
	return b
}

func (b *BargainBuilder) Buyer() bargain.Actor {
	return bargain.BuyerActor(b.BuyerID)
}

func (b *BargainBuilder) Seller() bargain.Actor {
	return bargain.SellerActor(b.SellerID)
}

// Build methods
func (b *BargainBuilder) BuildDomain() (*bargain.Thread, error) {
	t, _, err := bargain.Open(b.BuyerID, b.SellerID, b.ProductID,
		pricing.MoneyOf(b.CatalogPrice), pricing.MoneyOf(b.Offer), b.Now)
	return t, err
}

// BuildCountered returns a thread the seller has countered at counter.
func (b *BargainBuilder) BuildCountered(counter int64) (*bargain.Thread, error) {
	t, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if _, err := t.Counter(b.Seller(), pricing.MoneyOf(counter), b.Now.Add(time.Minute)); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *BargainBuilder) BuildAccepted(counter int64) (*bargain.Thread, error) {
	t, err := b.BuildCountered(counter)
	if err != nil {
		return nil, err
	}
	if _, _, err := t.Accept(b.Buyer(), b.Now.Add(2*time.Minute)); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *BargainBuilder) BuildRejected() (*bargain.Thread, error) {
	t, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if _, err := t.Reject(b.Seller(), b.Now.Add(time.Minute)); err != nil {
		return nil, err
	}
	return t, nil
}

// Fluent builder methods
func (b *BargainBuilder) WithBuyerID(id uuid.UUID) *BargainBuilder {
	b.BuyerID = id
	return b
}

func (b *BargainBuilder) WithSellerID(id uuid.UUID) *BargainBuilder {
	b.SellerID = id
	return b
}

func (b *BargainBuilder) WithProductID(id uuid.UUID) *BargainBuilder {
	b.ProductID = id
	return b
}

func (b *BargainBuilder) WithCatalogPrice(amount int64) *BargainBuilder {
	b.CatalogPrice = amount
	return b
}

func (b *BargainBuilder) WithOffer(amount int64) *BargainBuilder {
	b.Offer = amount
	return b
}

// ResolvedPriceFrom builds the ledger entry an accepted thread produces.
func ResolvedPriceFrom(t *bargain.Thread) (*pricing.ResolvedPrice, error) {
	if t.AgreedPrice() == nil {
		return nil, bargain.ErrNothingToAccept
	}
	return pricing.NewResolvedPrice(t.BuyerID(), t.ProductID(), *t.AgreedPrice(), t.ID(), t.UpdatedAt())
}
