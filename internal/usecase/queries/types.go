package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductView represents read-optimized catalog data
type ProductView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	PriceAmount int64     `json:"price_amount"`
	Stock       int32     `json:"stock"`
}

// ResolvedPriceView is one pricing ledger entry
type ResolvedPriceView struct {
	BuyerID        uuid.UUID `json:"buyer_id"`
	ProductID      uuid.UUID `json:"product_id"`
	PriceAmount    int64     `json:"price_amount"`
	SourceThreadID uuid.UUID `json:"source_thread_id"`
	ResolvedAt     time.Time `json:"resolved_at"`
}

type BargainMessageView struct {
	ID       uuid.UUID `json:"id"`
	SenderID uuid.UUID `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}

type BargainThreadView struct {
	ID           uuid.UUID            `json:"id"`
	BuyerID      uuid.UUID            `json:"buyer_id"`
	SellerID     uuid.UUID            `json:"seller_id"`
	ProductID    uuid.UUID            `json:"product_id"`
	ProductName  string               `json:"product_name"`
	CatalogPrice int64                `json:"catalog_price"`
	CurrentOffer int64                `json:"current_offer"`
	CounterOffer *int64               `json:"counter_offer,omitempty"`
	AgreedPrice  *int64               `json:"agreed_price,omitempty"`
	Status       string               `json:"status"`
	Version      int64                `json:"version"`
	Messages     []BargainMessageView `json:"messages"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

type BargainThreadListItem struct {
	ID           uuid.UUID `json:"id"`
	BuyerID      uuid.UUID `json:"buyer_id"`
	SellerID     uuid.UUID `json:"seller_id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CatalogPrice int64     `json:"catalog_price"`
	CurrentOffer int64     `json:"current_offer"`
	CounterOffer *int64    `json:"counter_offer,omitempty"`
	AgreedPrice  *int64    `json:"agreed_price,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CartItemView is a stored cart line before pricing
type CartItemView struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type PricedLineView struct {
	ProductID      uuid.UUID  `json:"product_id"`
	ProductName    string     `json:"product_name"`
	Quantity       int        `json:"quantity"`
	UnitPrice      int64      `json:"unit_price"`
	CatalogPrice   int64      `json:"catalog_price"`
	Source         string     `json:"source"`
	SourceThreadID *uuid.UUID `json:"source_thread_id,omitempty"`
	LineTotal      int64      `json:"line_total"`
}

type PricedCartView struct {
	BuyerID uuid.UUID        `json:"buyer_id"`
	Lines   []PricedLineView `json:"lines"`
	Total   int64            `json:"total"`
}

type OrderItemView struct {
	ProductID           uuid.UUID `json:"product_id"`
	Quantity            int32     `json:"quantity"`
	UnitPriceAtPurchase int64     `json:"unit_price_at_purchase"`
	PriceSource         string    `json:"price_source"`
	LineTotal           int64     `json:"line_total"`
}

type OrderView struct {
	ID                    uuid.UUID       `json:"id"`
	Number                string          `json:"number"`
	BuyerID               uuid.UUID       `json:"buyer_id"`
	LinkedBargainThreadID *uuid.UUID      `json:"linked_bargain_thread_id,omitempty"`
	TotalAmount           int64           `json:"total_amount"`
	PaymentMethod         string          `json:"payment_method"`
	Status                string          `json:"status"`
	Items                 []OrderItemView `json:"items"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	TotalAmount   int64     `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
