package request

import (
	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type OpenBargainRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Offer     int64     `json:"offer" binding:"required,gt=0"`
}

func (r *OpenBargainRequest) ToCommand() commands.OpenBargainRequest {
	return commands.OpenBargainRequest{ProductID: r.ProductID, Offer: r.Offer}
}

// OfferRequest carries a counter-offer or a revised buyer offer.
type OfferRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// DecisionRequest names the side the caller acts as on accept/reject.
type DecisionRequest struct {
	As string `json:"as" binding:"required,oneof=buyer seller"`
}

func (r *DecisionRequest) ToActor(userID uuid.UUID) (bargain.Actor, error) {
	role, err := bargain.NewRole(r.As)
	if err != nil {
		return bargain.Actor{}, err
	}
	return bargain.Actor{UserID: userID, Role: role}, nil
}

type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
