package response

import (
	"time"

	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID           uuid.UUID `json:"product_id"`
	Quantity            int32     `json:"quantity"`
	UnitPriceAtPurchase int64     `json:"unit_price_at_purchase"`
	PriceSource         string    `json:"price_source"`
	LineTotal           int64     `json:"line_total"`
}

type OrderResponse struct {
	ID                    uuid.UUID           `json:"id"`
	Number                string              `json:"number"`
	BuyerID               uuid.UUID           `json:"buyer_id"`
	LinkedBargainThreadID *uuid.UUID          `json:"linked_bargain_thread_id,omitempty"`
	TotalAmount           int64               `json:"total_amount"`
	PaymentMethod         string              `json:"payment_method"`
	Status                string              `json:"status"`
	Items                 []OrderItemResponse `json:"items"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

type OrderListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	TotalAmount   int64     `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders     []OrderListItemResponse `json:"orders"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

type OrderStatusResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	return copyInto[OrderResponse](v)
}

func FromOrderList(items []*queries.OrderListItem, next *queries.Cursor) (*OrderListResponse, error) {
	orders, err := copySlice[OrderListItemResponse](items)
	if err != nil {
		return nil, err
	}
	res := &OrderListResponse{Orders: orders}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

func FromOrderResult(r *commands.OrderResult) *OrderStatusResponse {
	return &OrderStatusResponse{
		ID:          r.OrderID,
		Number:      r.OrderNumber,
		TotalAmount: r.TotalAmount,
		Status:      r.Status.String(),
	}
}
