package errs

import "errors"

// Error kinds surfaced by the negotiation, pricing and ordering layers.
// Callers match with Is; lower layers attach them with Mark.
var (
	// Negotiation
	ErrInvalidOffer           = errors.New("invalid offer")
	ErrDuplicateActiveThread  = errors.New("duplicate active bargain thread")
	ErrThreadClosed           = errors.New("bargain thread closed")
	ErrNothingToAccept        = errors.New("nothing to accept")
	ErrUnauthorized           = errors.New("actor not permitted")
	ErrConcurrentModification = errors.New("concurrent modification")

	// Pricing
	ErrInvalidPrice = errors.New("invalid price")

	// Ordering
	ErrEmptyCart         = errors.New("empty cart")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Lookup
	ErrNotFound = errors.New("not found")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")
)
