package bargain

import (
	"time"

	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidOffer           = errs.ErrInvalidOffer
	ErrDuplicateActiveThread  = errs.ErrDuplicateActiveThread
	ErrThreadClosed           = errs.ErrThreadClosed
	ErrNothingToAccept        = errs.ErrNothingToAccept
	ErrUnauthorized           = errs.ErrUnauthorized
	ErrConcurrentModification = errs.ErrConcurrentModification

	ErrInvalidRole    = errs.WithKind(errs.ErrDomainValidation, "invalid bargain role")
	ErrEmptyMessage   = errs.WithKind(errs.ErrDomainValidation, "message cannot be empty")
	ErrMessageTooLong = errs.WithKind(errs.ErrDomainValidation, "message too long")
)

// Thread is one buyer/seller negotiation over a single product.
// Accepted and rejected are terminal: every later transition fails with
// ErrThreadClosed. Posting messages is allowed in any status.
type Thread struct {
	id           uuid.UUID
	buyerID      uuid.UUID
	sellerID     uuid.UUID
	productID    uuid.UUID
	catalogPrice pricing.Money
	currentOffer pricing.Money
	counterOffer *pricing.Money
	agreedPrice  *pricing.Money
	status       Status
	messages     []Message
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

// Open starts a pending thread with the buyer's first offer. sellerID is the
// product owner at the time of opening.
func Open(buyerID, sellerID, productID uuid.UUID, catalogPrice, offer pricing.Money, now time.Time) (*Thread, Event, error) {
	if buyerID == uuid.Nil || sellerID == uuid.Nil || productID == uuid.Nil {
		return nil, Event{}, errs.WithKind(errs.ErrDomainValidation, "thread requires buyer, seller and product")
	}
	if buyerID == sellerID {
		return nil, Event{}, errs.WithKind(ErrUnauthorized, "seller cannot bargain on own product")
	}
	if !catalogPrice.IsPositive() {
		return nil, Event{}, errs.WithKind(errs.ErrInvalidPrice, "catalog price must be positive: %d", catalogPrice.Amount())
	}

	t := &Thread{
		id:           uuid.New(),
		buyerID:      buyerID,
		sellerID:     sellerID,
		productID:    productID,
		catalogPrice: catalogPrice,
		status:       StatusPending,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}
	if err := t.validateOffer(offer); err != nil {
		return nil, Event{}, err
	}
	t.currentOffer = offer

	return t, t.event(EventOffer, buyerID, sellerID, offer, now), nil
}

func ReconstructThread(
	id, buyerID, sellerID, productID uuid.UUID,
	catalogPrice, currentOffer pricing.Money,
	counterOffer, agreedPrice *pricing.Money,
	status Status,
	messages []Message,
	version int64,
	createdAt, updatedAt time.Time,
) *Thread {
	return &Thread{
		id:           id,
		buyerID:      buyerID,
		sellerID:     sellerID,
		productID:    productID,
		catalogPrice: catalogPrice,
		currentOffer: currentOffer,
		counterOffer: counterOffer,
		agreedPrice:  agreedPrice,
		status:       status,
		messages:     messages,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (t *Thread) ID() uuid.UUID                { return t.id }
func (t *Thread) BuyerID() uuid.UUID           { return t.buyerID }
func (t *Thread) SellerID() uuid.UUID          { return t.sellerID }
func (t *Thread) ProductID() uuid.UUID         { return t.productID }
func (t *Thread) CatalogPrice() pricing.Money  { return t.catalogPrice }
func (t *Thread) CurrentOffer() pricing.Money  { return t.currentOffer }
func (t *Thread) CounterOffer() *pricing.Money { return t.counterOffer }
func (t *Thread) AgreedPrice() *pricing.Money  { return t.agreedPrice }
func (t *Thread) Status() Status               { return t.status }
func (t *Thread) Version() int64               { return t.version }
func (t *Thread) CreatedAt() time.Time         { return t.createdAt }
func (t *Thread) UpdatedAt() time.Time         { return t.updatedAt }

func (t *Thread) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Thread) IsActive() bool {
	return !t.status.IsTerminal()
}

func (t *Thread) IsParticipant(userID uuid.UUID) bool {
	return userID == t.buyerID || userID == t.sellerID
}

// Counter records the seller's counter-offer.
func (t *Thread) Counter(actor Actor, value pricing.Money, now time.Time) (Event, error) {
	if err := t.authorize(actor, RoleSeller); err != nil {
		return Event{}, err
	}
	if err := t.ensureOpen(); err != nil {
		return Event{}, err
	}
	if err := t.validateOffer(value); err != nil {
		return Event{}, err
	}

	v := value
	t.counterOffer = &v
	t.status = StatusCountered
	t.touch(now)
	return t.event(EventCounter, t.sellerID, t.buyerID, value, now), nil
}

// Revise replaces the buyer's offer and drops any outstanding counter.
func (t *Thread) Revise(actor Actor, value pricing.Money, now time.Time) (Event, error) {
	if err := t.authorize(actor, RoleBuyer); err != nil {
		return Event{}, err
	}
	if err := t.ensureOpen(); err != nil {
		return Event{}, err
	}
	if err := t.validateOffer(value); err != nil {
		return Event{}, err
	}

	t.currentOffer = value
	t.counterOffer = nil
	t.status = StatusPending
	t.touch(now)
	return t.event(EventOffer, t.buyerID, t.sellerID, value, now), nil
}

// Accept closes the thread at the other party's number: the buyer accepts
// the counter-offer, the seller accepts the buyer's current offer.
func (t *Thread) Accept(actor Actor, now time.Time) (pricing.Money, Event, error) {
	if err := t.authorizeParticipant(actor); err != nil {
		return pricing.Money{}, Event{}, err
	}
	if err := t.ensureOpen(); err != nil {
		return pricing.Money{}, Event{}, err
	}

	var accepted pricing.Money
	switch actor.Role {
	case RoleBuyer:
		if t.counterOffer == nil {
			return pricing.Money{}, Event{}, errs.WithKind(ErrNothingToAccept, "no counter-offer on thread %s", t.id)
		}
		accepted = *t.counterOffer
	case RoleSeller:
		if !t.currentOffer.IsPositive() {
			return pricing.Money{}, Event{}, errs.WithKind(ErrNothingToAccept, "no buyer offer on thread %s", t.id)
		}
		accepted = t.currentOffer
	}

	a := accepted
	t.agreedPrice = &a
	t.counterOffer = nil
	t.status = StatusAccepted
	t.touch(now)
	return accepted, t.event(EventAccepted, actor.UserID, t.counterparty(actor.Role), accepted, now), nil
}

func (t *Thread) Reject(actor Actor, now time.Time) (Event, error) {
	if err := t.authorizeParticipant(actor); err != nil {
		return Event{}, err
	}
	if err := t.ensureOpen(); err != nil {
		return Event{}, err
	}

	amount := t.currentOffer
	if t.counterOffer != nil {
		amount = *t.counterOffer
	}
	t.counterOffer = nil
	t.status = StatusRejected
	t.touch(now)
	return t.event(EventRejected, actor.UserID, t.counterparty(actor.Role), amount, now), nil
}

// PostMessage appends to the message log; allowed in every status.
func (t *Thread) PostMessage(senderID uuid.UUID, text MessageText, now time.Time) (Message, error) {
	if !t.IsParticipant(senderID) {
		return Message{}, errs.WithKind(ErrUnauthorized, "user %s is not a participant of thread %s", senderID, t.id)
	}
	msg := Message{
		id:       uuid.New(),
		threadID: t.id,
		senderID: senderID,
		text:     text,
		sentAt:   now,
	}
	t.messages = append(t.messages, msg)
	t.touch(now)
	return msg, nil
}

// authorize admits only the given side of the thread.
func (t *Thread) authorize(actor Actor, required Role) error {
	if actor.Role != required {
		return errs.WithKind(ErrUnauthorized, "role %q cannot perform this action", actor.Role)
	}
	return t.authorizeParticipant(actor)
}

// authorizeParticipant admits either side, as long as the actor really is
// the buyer or seller they claim to be.
func (t *Thread) authorizeParticipant(actor Actor) error {
	switch actor.Role {
	case RoleBuyer:
		if actor.UserID != t.buyerID {
			return errs.WithKind(ErrUnauthorized, "user %s is not the buyer of thread %s", actor.UserID, t.id)
		}
	case RoleSeller:
		if actor.UserID != t.sellerID {
			return errs.WithKind(ErrUnauthorized, "user %s is not the seller of thread %s", actor.UserID, t.id)
		}
	default:
		return errs.WithKind(ErrUnauthorized, "role %q cannot perform this action", actor.Role)
	}
	return nil
}

func (t *Thread) ensureOpen() error {
	if t.status.IsTerminal() {
		return errs.WithKind(ErrThreadClosed, "thread %s is %s", t.id, t.status)
	}
	return nil
}

// 0 < value < catalogPrice
func (t *Thread) validateOffer(value pricing.Money) error {
	if !value.IsPositive() || !value.LessThan(t.catalogPrice) {
		return errs.WithKind(ErrInvalidOffer, "offer %d must be above zero and below catalog price %d", value.Amount(), t.catalogPrice.Amount())
	}
	return nil
}

func (t *Thread) touch(now time.Time) {
	t.updatedAt = now
}

func (t *Thread) counterparty(role Role) uuid.UUID {
	if role == RoleBuyer {
		return t.sellerID
	}
	return t.buyerID
}

func (t *Thread) event(typ EventType, actorID, recipientID uuid.UUID, amount pricing.Money, now time.Time) Event {
	return Event{
		Type:        typ,
		ThreadID:    t.id,
		ProductID:   t.productID,
		ActorID:     actorID,
		RecipientID: recipientID,
		Amount:      amount,
		OccurredAt:  now,
	}
}
