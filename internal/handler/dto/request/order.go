package request

import (
	"bargain-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Lines          []CartLineRequest `json:"lines" binding:"dive"`
	LinkedThreadID *uuid.UUID        `json:"linked_thread_id"`
	PaymentMethod  string            `json:"payment_method" binding:"required,oneof=cod esewa khalti"`
}

func (r *CreateOrderRequest) ToCommand() commands.MaterializeOrderRequest {
	lines := make([]commands.OrderLineRequest, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = commands.OrderLineRequest{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return commands.MaterializeOrderRequest{
		Lines:          lines,
		LinkedThreadID: r.LinkedThreadID,
		PaymentMethod:  r.PaymentMethod,
	}
}

type CheckoutRequest struct {
	LinkedThreadID *uuid.UUID `json:"linked_thread_id"`
	PaymentMethod  string     `json:"payment_method" binding:"required,oneof=cod esewa khalti"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{LinkedThreadID: r.LinkedThreadID, PaymentMethod: r.PaymentMethod}
}

type UpdateOrderStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=advance cancel"`
}
