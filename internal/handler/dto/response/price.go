package response

import (
	"time"

	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResolvedPriceResponse struct {
	BuyerID        uuid.UUID `json:"buyer_id"`
	ProductID      uuid.UUID `json:"product_id"`
	PriceAmount    int64     `json:"price_amount"`
	SourceThreadID uuid.UUID `json:"source_thread_id"`
	ResolvedAt     time.Time `json:"resolved_at"`
}

func FromResolvedPriceView(v *queries.ResolvedPriceView) (*ResolvedPriceResponse, error) {
	return copyInto[ResolvedPriceResponse](v)
}
