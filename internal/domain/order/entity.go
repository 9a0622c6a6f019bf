package order

import (
	"time"

	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errs.ErrEmptyCart
	ErrInsufficientStock = errs.ErrInsufficientStock
	ErrInvalidTransition = errs.ErrInvalidTransition

	ErrInvalidPaymentMethod = errs.WithKind(errs.ErrDomainValidation, "invalid payment method")
	ErrInvalidStatus        = errs.WithKind(errs.ErrDomainValidation, "invalid order status")
)

// Item prices are frozen at creation and never recomputed.
type Item struct {
	id                  uuid.UUID
	productID           uuid.UUID
	quantity            int
	unitPriceAtPurchase pricing.Money
	source              cart.PriceSource
}

func ReconstructItem(id, productID uuid.UUID, quantity int, unitPrice pricing.Money, source cart.PriceSource) Item {
	return Item{id: id, productID: productID, quantity: quantity, unitPriceAtPurchase: unitPrice, source: source}
}

func (i Item) ID() uuid.UUID                      { return i.id }
func (i Item) ProductID() uuid.UUID               { return i.productID }
func (i Item) Quantity() int                      { return i.quantity }
func (i Item) UnitPriceAtPurchase() pricing.Money { return i.unitPriceAtPurchase }
func (i Item) Source() cart.PriceSource           { return i.source }

type Order struct {
	id                    uuid.UUID
	number                string
	buyerID               uuid.UUID
	items                 []Item
	linkedBargainThreadID *uuid.UUID
	totalAmount           pricing.Money
	paymentMethod         PaymentMethod
	status                Status
	createdAt             time.Time
	updatedAt             time.Time
}

// Materialize freezes priced lines into a pending order. stock holds the
// catalog stock per product read in the same snapshot as the prices.
func Materialize(
	buyerID uuid.UUID,
	lines []cart.PricedLine,
	stock map[uuid.UUID]int,
	linkedThreadID *uuid.UUID,
	payment PaymentMethod,
	now time.Time,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, errs.WithKind(ErrEmptyCart, "order for buyer %s has no lines", buyerID)
	}
	if !payment.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	wanted := make(map[uuid.UUID]int, len(lines))
	for _, l := range lines {
		wanted[l.ProductID] += l.Quantity
	}
	for productID, qty := range wanted {
		available, ok := stock[productID]
		if !ok {
			return nil, errs.WithKind(errs.ErrNotFound, "product %s not in catalog", productID)
		}
		if qty > available {
			return nil, errs.WithKind(ErrInsufficientStock, "product %s: requested %d, available %d", productID, qty, available)
		}
	}

	total, err := cart.Total(lines)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(lines))
	for i, l := range lines {
		items[i] = Item{
			id:                  uuid.New(),
			productID:           l.ProductID,
			quantity:            l.Quantity,
			unitPriceAtPurchase: l.UnitPrice,
			source:              l.Source,
		}
	}

	o := &Order{
		id:                    uuid.New(),
		number:                NewNumber(now),
		buyerID:               buyerID,
		items:                 items,
		linkedBargainThreadID: linkedThreadID,
		totalAmount:           total,
		paymentMethod:         payment,
		status:                StatusPending,
		createdAt:             now,
		updatedAt:             now,
	}
	return o, nil
}

func ReconstructOrder(
	id uuid.UUID,
	number string,
	buyerID uuid.UUID,
	items []Item,
	linkedThreadID *uuid.UUID,
	total pricing.Money,
	payment PaymentMethod,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:                    id,
		number:                number,
		buyerID:               buyerID,
		items:                 items,
		linkedBargainThreadID: linkedThreadID,
		totalAmount:           total,
		paymentMethod:         payment,
		status:                status,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) Number() string                    { return o.number }
func (o *Order) BuyerID() uuid.UUID                { return o.buyerID }
func (o *Order) LinkedBargainThreadID() *uuid.UUID { return o.linkedBargainThreadID }
func (o *Order) TotalAmount() pricing.Money        { return o.totalAmount }
func (o *Order) PaymentMethod() PaymentMethod      { return o.paymentMethod }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) UpdatedAt() time.Time              { return o.updatedAt }

func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// TransitionTo moves the lifecycle status; items and prices stay frozen.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return errs.WithKind(ErrInvalidTransition, "order %s cannot move from %s to %s", o.id, o.status, next)
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) Advance(now time.Time) error {
	next, ok := o.status.Next()
	if !ok {
		return errs.WithKind(ErrInvalidTransition, "order %s cannot advance from %s", o.id, o.status)
	}
	return o.TransitionTo(next, now)
}

func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(StatusCancelled, now)
}
