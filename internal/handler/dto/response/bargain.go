package response

import (
	"time"

	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type BargainMessageResponse struct {
	ID       uuid.UUID `json:"id"`
	SenderID uuid.UUID `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}

type BargainThreadResponse struct {
	ID           uuid.UUID                `json:"id"`
	BuyerID      uuid.UUID                `json:"buyer_id"`
	SellerID     uuid.UUID                `json:"seller_id"`
	ProductID    uuid.UUID                `json:"product_id"`
	ProductName  string                   `json:"product_name"`
	CatalogPrice int64                    `json:"catalog_price"`
	CurrentOffer int64                    `json:"current_offer"`
	CounterOffer *int64                   `json:"counter_offer,omitempty"`
	AgreedPrice  *int64                   `json:"agreed_price,omitempty"`
	Status       string                   `json:"status"`
	Version      int64                    `json:"version"`
	Messages     []BargainMessageResponse `json:"messages"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

type BargainThreadListItemResponse struct {
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

type BargainListResponse struct {
	Threads    []BargainThreadListItemResponse `json:"threads"`
	NextCursor string                          `json:"next_cursor,omitempty"`
}

type MessageCreatedResponse struct {
	ID       uuid.UUID `json:"id"`
	ThreadID uuid.UUID `json:"thread_id"`
}

func FromBargainThreadView(v *queries.BargainThreadView) (*BargainThreadResponse, error) {
	res, err := copyInto[BargainThreadResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Messages == nil {
		res.Messages = []BargainMessageResponse{}
	}
	return res, nil
}

func FromBargainThreadList(items []*queries.BargainThreadListItem, next *queries.Cursor) (*BargainListResponse, error) {
	threads, err := copySlice[BargainThreadListItemResponse](items)
	if err != nil {
		return nil, err
	}
	res := &BargainListResponse{Threads: threads}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

func FromMessageResult(r *commands.MessageResult) *MessageCreatedResponse {
	return &MessageCreatedResponse{ID: r.MessageID, ThreadID: r.ThreadID}
}
