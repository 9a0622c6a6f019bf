package response

import (
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricedLineResponse struct {
	ProductID      uuid.UUID  `json:"product_id"`
	ProductName    string     `json:"product_name"`
	Quantity       int        `json:"quantity"`
	UnitPrice      int64      `json:"unit_price"`
	CatalogPrice   int64      `json:"catalog_price"`
	Source         string     `json:"source"`
	SourceThreadID *uuid.UUID `json:"source_thread_id,omitempty"`
	LineTotal      int64      `json:"line_total"`
}

type PricedCartResponse struct {
	BuyerID uuid.UUID            `json:"buyer_id"`
	Lines   []PricedLineResponse `json:"lines"`
	Total   int64                `json:"total"`
}

func FromPricedCartView(v *queries.PricedCartView) (*PricedCartResponse, error) {
	res, err := copyInto[PricedCartResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Lines == nil {
		res.Lines = []PricedLineResponse{}
	}
	return res, nil
}
