package request

import (
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=999"`
}

type PriceCartRequest struct {
	Lines []CartLineRequest `json:"lines" binding:"dive"`
}

func (r *PriceCartRequest) ToQuery() []queries.CartLineInput {
	lines := make([]queries.CartLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = queries.CartLineInput{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return lines
}

type SetCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999"`
}
