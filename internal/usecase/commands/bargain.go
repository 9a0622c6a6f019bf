package commands

import (
	"context"
	"log/slog"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/clock"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenBargainRequest struct {
	ProductID uuid.UUID
	Offer     int64
}

type BargainResult struct {
	ThreadID    uuid.UUID
	Status      bargain.Status
	AgreedPrice *int64
}

type MessageResult struct {
	MessageID uuid.UUID
	ThreadID  uuid.UUID
}

type BargainCommands interface {
	Open(ctx context.Context, req OpenBargainRequest, buyerID uuid.UUID) (*BargainResult, error)
	Counter(ctx context.Context, threadID, sellerID uuid.UUID, amount int64) (*BargainResult, error)
	Revise(ctx context.Context, threadID, buyerID uuid.UUID, amount int64) (*BargainResult, error)
	Accept(ctx context.Context, threadID uuid.UUID, actor bargain.Actor) (*BargainResult, error)
	Reject(ctx context.Context, threadID uuid.UUID, actor bargain.Actor) (*BargainResult, error)
	PostMessage(ctx context.Context, threadID, senderID uuid.UUID, text string) (*MessageResult, error)
	RetractPrice(ctx context.Context, sellerID, buyerID, productID uuid.UUID) error
}

type bargainUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.NotificationDispatcher
	cfg      config.BargainConfig
}

func NewBargainUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier shared.NotificationDispatcher, cfg config.BargainConfig) BargainCommands {
	return &bargainUseCaseImpl{uow: uow, clock: clk, notifier: notifier, cfg: cfg}
}

func (uc *bargainUseCaseImpl) Open(ctx context.Context, req OpenBargainRequest, buyerID uuid.UUID) (*BargainResult, error) {
	var (
		thread *bargain.Thread
		event  bargain.Event
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := tx.Reads().ProductByID(ctx, req.ProductID)
		if err != nil {
			return err
		}

		exists, err := tx.Reads().ActiveThreadExists(ctx, buyerID, product.ID)
		if err != nil {
			return err
		}
		if exists {
			return errs.WithKind(errs.ErrDuplicateActiveThread, "buyer %s already negotiates product %s", buyerID, product.ID)
		}

		t, ev, err := bargain.Open(buyerID, product.OwnerID, product.ID, product.Price, pricing.MoneyOf(req.Offer), uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bargains().Create(ctx, tx.DB(), t); err != nil {
			return err
		}
		thread, event = t, ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, event)
	return resultFromThread(thread), nil
}

func (uc *bargainUseCaseImpl) Counter(ctx context.Context, threadID, sellerID uuid.UUID, amount int64) (*BargainResult, error) {
	return uc.transition(ctx, threadID, func(_ context.Context, _ shared.Tx, t *bargain.Thread) (bargain.Event, error) {
		return t.Counter(bargain.SellerActor(sellerID), pricing.MoneyOf(amount), uc.clock.Now())
	})
}

func (uc *bargainUseCaseImpl) Revise(ctx context.Context, threadID, buyerID uuid.UUID, amount int64) (*BargainResult, error) {
	return uc.transition(ctx, threadID, func(_ context.Context, _ shared.Tx, t *bargain.Thread) (bargain.Event, error) {
		return t.Revise(bargain.BuyerActor(buyerID), pricing.MoneyOf(amount), uc.clock.Now())
	})
}

// Accept closes the thread and writes the ledger entry in the same transaction.
func (uc *bargainUseCaseImpl) Accept(ctx context.Context, threadID uuid.UUID, actor bargain.Actor) (*BargainResult, error) {
	return uc.transition(ctx, threadID, func(ctx context.Context, tx shared.Tx, t *bargain.Thread) (bargain.Event, error) {
		now := uc.clock.Now()
		price, ev, err := t.Accept(actor, now)
		if err != nil {
			return bargain.Event{}, err
		}
		rp, err := pricing.NewResolvedPrice(t.BuyerID(), t.ProductID(), price, t.ID(), now)
		if err != nil {
			return bargain.Event{}, err
		}
		if err := tx.Ledger().Set(ctx, tx.DB(), rp); err != nil {
			return bargain.Event{}, err
		}
		return ev, nil
	})
}

func (uc *bargainUseCaseImpl) Reject(ctx context.Context, threadID uuid.UUID, actor bargain.Actor) (*BargainResult, error) {
	return uc.transition(ctx, threadID, func(_ context.Context, _ shared.Tx, t *bargain.Thread) (bargain.Event, error) {
		return t.Reject(actor, uc.clock.Now())
	})
}

func (uc *bargainUseCaseImpl) PostMessage(ctx context.Context, threadID, senderID uuid.UUID, text string) (*MessageResult, error) {
	body, err := bargain.NewMessageText(text, uc.maxMessageRunes())
	if err != nil {
		return nil, err
	}

	var result *MessageResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Bargains().LockForUpdate(ctx, tx.DB(), threadID)
		if err != nil {
			return err
		}
		msg, err := t.PostMessage(senderID, body, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bargains().AppendMessage(ctx, tx.DB(), t, msg); err != nil {
			return err
		}
		result = &MessageResult{MessageID: msg.ID(), ThreadID: t.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RetractPrice lets the product's seller clear a buyer's resolved price.
// The source thread stays accepted.
func (uc *bargainUseCaseImpl) RetractPrice(ctx context.Context, sellerID, buyerID, productID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := tx.Reads().ProductByID(ctx, productID)
		if err != nil {
			return err
		}
		if product.OwnerID != sellerID {
			return errs.WithKind(errs.ErrUnauthorized, "user %s does not own product %s", sellerID, productID)
		}
		return tx.Ledger().Clear(ctx, tx.DB(), buyerID, productID)
	})
}

type transitionFunc func(ctx context.Context, tx shared.Tx, t *bargain.Thread) (bargain.Event, error)

// transition locks the row, re-validates status on the locked copy, then
// saves with the version it read.
func (uc *bargainUseCaseImpl) transition(ctx context.Context, threadID uuid.UUID, fn transitionFunc) (*BargainResult, error) {
	var (
		result *BargainResult
		event  bargain.Event
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Bargains().LockForUpdate(ctx, tx.DB(), threadID)
		if err != nil {
			return err
		}
		ev, err := fn(ctx, tx, t)
		if err != nil {
			return err
		}
		if err := tx.Bargains().Save(ctx, tx.DB(), t); err != nil {
			return err
		}
		result, event = resultFromThread(t), ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, event)
	return result, nil
}

func (uc *bargainUseCaseImpl) dispatch(ctx context.Context, ev bargain.Event) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Dispatch(context.WithoutCancel(ctx), ev); err != nil {
		slog.Warn("bargain notification dispatch failed",
			"thread_id", ev.ThreadID.String(),
			"event", ev.Type.String(),
			"recipient_id", ev.RecipientID.String(),
			"error", err.Error())
	}
}

func (uc *bargainUseCaseImpl) maxMessageRunes() int {
	if uc.cfg.MaxMessageRunes > 0 {
		return uc.cfg.MaxMessageRunes
	}
	return bargain.DefaultMaxMessageRunes
}

func resultFromThread(t *bargain.Thread) *BargainResult {
	res := &BargainResult{ThreadID: t.ID(), Status: t.Status()}
	if p := t.AgreedPrice(); p != nil {
		v := p.Amount()
		res.AgreedPrice = &v
	}
	return res
}
