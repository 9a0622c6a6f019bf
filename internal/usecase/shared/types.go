package shared

import (
	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/pricing"

	"github.com/google/uuid"
)

type ProductSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Price   pricing.Money
	Stock   int
}

// Minimal snapshot for command read operations
type ThreadSnapshot struct {
	ID        uuid.UUID
	BuyerID   uuid.UUID
	SellerID  uuid.UUID
	ProductID uuid.UUID
	Status    bargain.Status
}
