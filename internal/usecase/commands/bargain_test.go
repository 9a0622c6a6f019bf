//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/clock"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/shared"
	"bargain-market/tests/common/builder"
	"bargain-market/tests/common/memuow"
	"bargain-market/tests/common/testutil"
	sharedmock "bargain-market/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memuow.Store
	clock   *clock.MockClock
	buyer   uuid.UUID
	seller  uuid.UUID
	product shared.ProductSnapshot
}

func newFixture() *fixture {
	f := &fixture{
		store:  memuow.New(),
		clock:  clock.NewMockClock(baseTime),
		buyer:  uuid.New(),
		seller: uuid.New(),
	}
	f.product = shared.ProductSnapshot{
		ID:      uuid.New(),
		OwnerID: f.seller,
		Name:    "Handwoven dhaka topi",
		Price:   pricing.MoneyOf(100),
		Stock:   10,
	}
	f.store.AddProduct(f.product)
	return f
}

func (f *fixture) bargains(notifier shared.NotificationDispatcher) commands.BargainCommands {
	return commands.NewBargainUseCase(f.store, f.clock, notifier, config.BargainConfig{MaxMessageRunes: 20})
}

func (f *fixture) open(t *testing.T, uc commands.BargainCommands, offer int64) uuid.UUID {
	t.Helper()
	res, err := uc.Open(context.Background(), commands.OpenBargainRequest{ProductID: f.product.ID, Offer: offer}, f.buyer)
	require.NoError(t, err)
	return res.ThreadID
}

// =============================================================================
// Negotiation flow
// =============================================================================

func TestBargain_OfferCounterAcceptWritesLedger(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	threadID := f.open(t, uc, 40)

	f.clock.Add(time.Minute)
	countered, err := uc.Counter(ctx, threadID, f.seller, 70)
	require.NoError(t, err)
	assert.Equal(t, bargain.StatusCountered, countered.Status)
	assert.Nil(t, countered.AgreedPrice)

	f.clock.Add(time.Minute)
	accepted, err := uc.Accept(ctx, threadID, bargain.BuyerActor(f.buyer))
	require.NoError(t, err)
	assert.Equal(t, bargain.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.AgreedPrice)
	assert.Equal(t, int64(70), *accepted.AgreedPrice)

	rp, ok := f.store.LedgerEntry(f.buyer, f.product.ID)
	require.True(t, ok)
	assert.Equal(t, int64(70), rp.Price().Amount())
	assert.Equal(t, threadID, rp.SourceThreadID())
	assert.Equal(t, baseTime.Add(2*time.Minute), rp.ResolvedAt())

	stored, ok := f.store.Thread(threadID)
	require.True(t, ok)
	assert.Equal(t, int64(3), stored.Version())
	assert.Nil(t, stored.CounterOffer())
}

func TestBargain_SellerAcceptsBuyerOffer(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	threadID := f.open(t, uc, 40)
	_, err := uc.Counter(ctx, threadID, f.seller, 80)
	require.NoError(t, err)
	_, err = uc.Revise(ctx, threadID, f.buyer, 60)
	require.NoError(t, err)

	res, err := uc.Accept(ctx, threadID, bargain.SellerActor(f.seller))
	require.NoError(t, err)
	require.NotNil(t, res.AgreedPrice)
	assert.Equal(t, int64(60), *res.AgreedPrice)

	rp, ok := f.store.LedgerEntry(f.buyer, f.product.ID)
	require.True(t, ok)
	assert.Equal(t, int64(60), rp.Price().Amount())
}

func TestBargain_Open(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		setup   func(f *fixture, uc commands.BargainCommands)
		buyer   func(f *fixture) uuid.UUID
		product func(f *fixture) uuid.UUID
		offer   int64
		errIs   error
	}{
		{
			name:    "success: pending thread created",
			buyer:   func(f *fixture) uuid.UUID { return f.buyer },
			product: func(f *fixture) uuid.UUID { return f.product.ID },
			offer:   40,
		},
		{
			name:    "error: offer equal to catalog price",
			buyer:   func(f *fixture) uuid.UUID { return f.buyer },
			product: func(f *fixture) uuid.UUID { return f.product.ID },
			offer:   100,
			errIs:   errs.ErrInvalidOffer,
		},
		{
			name:    "error: zero offer",
			buyer:   func(f *fixture) uuid.UUID { return f.buyer },
			product: func(f *fixture) uuid.UUID { return f.product.ID },
			offer:   0,
			errIs:   errs.ErrInvalidOffer,
		},
		{
			name:    "error: unknown product",
			buyer:   func(f *fixture) uuid.UUID { return f.buyer },
			product: func(f *fixture) uuid.UUID { return uuid.New() },
			offer:   40,
			errIs:   errs.ErrNotFound,
		},
		{
			name:    "error: seller bargains on own product",
			buyer:   func(f *fixture) uuid.UUID { return f.seller },
			product: func(f *fixture) uuid.UUID { return f.product.ID },
			offer:   40,
			errIs:   errs.ErrUnauthorized,
		},
		{
			name: "error: active thread already exists",
			setup: func(f *fixture, uc commands.BargainCommands) {
				_, err := uc.Open(ctx, commands.OpenBargainRequest{ProductID: f.product.ID, Offer: 30}, f.buyer)
				if err != nil {
					panic(err)
				}
			},
			buyer:   func(f *fixture) uuid.UUID { return f.buyer },
			product: func(f *fixture) uuid.UUID { return f.product.ID },
			offer:   40,
			errIs:   errs.ErrDuplicateActiveThread,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			uc := f.bargains(nil)
			if tc.setup != nil {
				tc.setup(f, uc)
			}
			before := f.store.ThreadCount()

			res, err := uc.Open(ctx, commands.OpenBargainRequest{ProductID: tc.product(f), Offer: tc.offer}, tc.buyer(f))

			if tc.errIs != nil {
				testutil.RequireKind(t, err, tc.errIs)
				assert.Nil(t, res)
				assert.Equal(t, before, f.store.ThreadCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bargain.StatusPending, res.Status)
			stored, ok := f.store.Thread(res.ThreadID)
			require.True(t, ok)
			assert.Equal(t, f.seller, stored.SellerID())
			assert.Equal(t, int64(100), stored.CatalogPrice().Amount())
		})
	}
}

func TestBargain_ReopenAfterTerminalState(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	first := f.open(t, uc, 40)
	_, err := uc.Reject(ctx, first, bargain.SellerActor(f.seller))
	require.NoError(t, err)

	second := f.open(t, uc, 45)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, f.store.ThreadCount())
}

func TestBargain_TransitionsOnClosedThread(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	threadID := f.open(t, uc, 40)
	_, err := uc.Counter(ctx, threadID, f.seller, 70)
	require.NoError(t, err)
	_, err = uc.Accept(ctx, threadID, bargain.BuyerActor(f.buyer))
	require.NoError(t, err)

	testCases := []struct {
		name string
		call func() error
	}{
		{"counter", func() error { _, err := uc.Counter(ctx, threadID, f.seller, 60); return err }},
		{"revise", func() error { _, err := uc.Revise(ctx, threadID, f.buyer, 50); return err }},
		{"accept again", func() error { _, err := uc.Accept(ctx, threadID, bargain.SellerActor(f.seller)); return err }},
		{"reject", func() error { _, err := uc.Reject(ctx, threadID, bargain.BuyerActor(f.buyer)); return err }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.RequireKind(t, tc.call(), errs.ErrThreadClosed)
		})
	}

	rp, ok := f.store.LedgerEntry(f.buyer, f.product.ID)
	require.True(t, ok)
	assert.Equal(t, int64(70), rp.Price().Amount())
}

func TestBargain_Authorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)
	threadID := f.open(t, uc, 40)
	stranger := uuid.New()

	_, err := uc.Counter(ctx, threadID, f.buyer, 70)
	testutil.RequireKind(t, err, errs.ErrUnauthorized)

	_, err = uc.Revise(ctx, threadID, f.seller, 50)
	testutil.RequireKind(t, err, errs.ErrUnauthorized)

	_, err = uc.Accept(ctx, threadID, bargain.SellerActor(stranger))
	testutil.RequireKind(t, err, errs.ErrUnauthorized)

	_, err = uc.PostMessage(ctx, threadID, stranger, "hello")
	testutil.RequireKind(t, err, errs.ErrUnauthorized)

	_, err = uc.Accept(ctx, threadID, bargain.BuyerActor(f.buyer))
	testutil.RequireKind(t, err, errs.ErrNothingToAccept)

	stored, ok := f.store.Thread(threadID)
	require.True(t, ok)
	assert.Equal(t, bargain.StatusPending, stored.Status())
	assert.Equal(t, int64(1), stored.Version())
}

func TestBargain_ConcurrentAcceptSingleWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	threadID := f.open(t, uc, 40)
	_, err := uc.Counter(ctx, threadID, f.seller, 70)
	require.NoError(t, err)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		closed  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = uc.Accept(ctx, threadID, bargain.BuyerActor(f.buyer))
			} else {
				_, err = uc.Reject(ctx, threadID, bargain.SellerActor(f.seller))
			}
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errs.Is(err, errs.ErrThreadClosed):
				closed++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, closed)

	stored, ok := f.store.Thread(threadID)
	require.True(t, ok)
	_, hasLedger := f.store.LedgerEntry(f.buyer, f.product.ID)
	assert.Equal(t, stored.Status() == bargain.StatusAccepted, hasLedger)
}

func TestBargain_StaleVersionIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	thread, err := builder.NewBargainBuilder().
		WithBuyerID(f.buyer).
		WithSellerID(f.seller).
		WithProductID(f.product.ID).
		WithCatalogPrice(100).
		WithOffer(40).
		BuildDomain()
	require.NoError(t, err)
	f.store.AddThread(thread)

	// A write through the store bumps the version past the caller's copy.
	_, err = uc.Counter(ctx, thread.ID(), f.seller, 70)
	require.NoError(t, err)

	err = f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := thread.Revise(bargain.BuyerActor(f.buyer), pricing.MoneyOf(50), f.clock.Now())
		require.NoError(t, err)
		return tx.Bargains().Save(ctx, tx.DB(), thread)
	})
	testutil.RequireKind(t, err, errs.ErrConcurrentModification)

	stored, ok := f.store.Thread(thread.ID())
	require.True(t, ok)
	assert.Equal(t, bargain.StatusCountered, stored.Status())
}

// =============================================================================
// Accept atomicity
// =============================================================================

func TestBargain_AcceptRollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		failOp     string
		counter    bool
		actor      func(f *fixture) bargain.Actor
		wantStatus bargain.Status
		wantVer    int64
	}{
		{
			name:       "ledger write fails on countered thread",
			failOp:     memuow.OpLedgerSet,
			counter:    true,
			actor:      func(f *fixture) bargain.Actor { return bargain.BuyerActor(f.buyer) },
			wantStatus: bargain.StatusCountered,
			wantVer:    2,
		},
		{
			name:       "thread save fails after ledger write",
			failOp:     memuow.OpBargainSave,
			counter:    true,
			actor:      func(f *fixture) bargain.Actor { return bargain.BuyerActor(f.buyer) },
			wantStatus: bargain.StatusCountered,
			wantVer:    2,
		},
		{
			name:       "ledger write fails on pending thread",
			failOp:     memuow.OpLedgerSet,
			actor:      func(f *fixture) bargain.Actor { return bargain.SellerActor(f.seller) },
			wantStatus: bargain.StatusPending,
			wantVer:    1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			uc := f.bargains(nil)
			threadID := f.open(t, uc, 40)
			if tc.counter {
				_, err := uc.Counter(ctx, threadID, f.seller, 70)
				require.NoError(t, err)
			}
			commits := f.store.Commits

			writeErr := errors.New("write failed")
			f.store.FailNext(tc.failOp, writeErr)

			res, err := uc.Accept(ctx, threadID, tc.actor(f))
			require.ErrorIs(t, err, writeErr)
			assert.Nil(t, res)
			assert.Equal(t, commits, f.store.Commits)

			stored, ok := f.store.Thread(threadID)
			require.True(t, ok)
			assert.Equal(t, tc.wantStatus, stored.Status())
			assert.Equal(t, tc.wantVer, stored.Version())
			assert.Nil(t, stored.AgreedPrice())
			_, hasLedger := f.store.LedgerEntry(f.buyer, f.product.ID)
			assert.False(t, hasLedger)

			// the injected failure is spent, so the same accept now commits both writes
			res, err = uc.Accept(ctx, threadID, tc.actor(f))
			require.NoError(t, err)
			assert.Equal(t, bargain.StatusAccepted, res.Status)
			_, hasLedger = f.store.LedgerEntry(f.buyer, f.product.ID)
			assert.True(t, hasLedger)
		})
	}
}

// =============================================================================
// Messages
// =============================================================================

func TestBargain_PostMessage(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)
	threadID := f.open(t, uc, 40)

	res, err := uc.PostMessage(ctx, threadID, f.buyer, "  is 40 okay?  ")
	require.NoError(t, err)
	assert.Equal(t, threadID, res.ThreadID)

	_, err = uc.Reject(ctx, threadID, bargain.SellerActor(f.seller))
	require.NoError(t, err)

	// allowed after the thread is closed
	_, err = uc.PostMessage(ctx, threadID, f.seller, "maybe next time")
	require.NoError(t, err)

	stored, ok := f.store.Thread(threadID)
	require.True(t, ok)
	msgs := stored.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, res.MessageID, msgs[0].ID())
	assert.Equal(t, f.seller, msgs[1].SenderID())

	_, err = uc.PostMessage(ctx, threadID, f.buyer, "   ")
	testutil.RequireKind(t, err, errs.ErrDomainValidation)

	_, err = uc.PostMessage(ctx, threadID, f.buyer, "this message is longer than twenty runes")
	testutil.RequireKind(t, err, errs.ErrDomainValidation)
}

// =============================================================================
// Ledger retraction
// =============================================================================

func TestBargain_RetractPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.bargains(nil)

	threadID := f.open(t, uc, 40)
	_, err := uc.Accept(ctx, threadID, bargain.SellerActor(f.seller))
	require.NoError(t, err)

	err = uc.RetractPrice(ctx, uuid.New(), f.buyer, f.product.ID)
	testutil.RequireKind(t, err, errs.ErrUnauthorized)

	require.NoError(t, uc.RetractPrice(ctx, f.seller, f.buyer, f.product.ID))
	_, ok := f.store.LedgerEntry(f.buyer, f.product.ID)
	assert.False(t, ok)

	stored, ok := f.store.Thread(threadID)
	require.True(t, ok)
	assert.Equal(t, bargain.StatusAccepted, stored.Status())

	err = uc.RetractPrice(ctx, f.seller, f.buyer, f.product.ID)
	testutil.RequireKind(t, err, errs.ErrNotFound)
}

// =============================================================================
// Notifications
// =============================================================================

func TestBargain_NotifiesCounterpartyAfterCommit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture()
	notifier := sharedmock.NewMockNotificationDispatcher(ctrl)
	uc := f.bargains(notifier)

	var events []bargain.Event
	notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev bargain.Event) error {
			events = append(events, ev)
			return nil
		}).Times(3)

	threadID := f.open(t, uc, 40)
	_, err := uc.Counter(ctx, threadID, f.seller, 70)
	require.NoError(t, err)
	_, err = uc.Accept(ctx, threadID, bargain.BuyerActor(f.buyer))
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, bargain.EventOffer, events[0].Type)
	assert.Equal(t, f.seller, events[0].RecipientID)
	assert.Equal(t, bargain.EventCounter, events[1].Type)
	assert.Equal(t, f.buyer, events[1].RecipientID)
	assert.Equal(t, int64(70), events[1].Amount.Amount())
	assert.Equal(t, bargain.EventAccepted, events[2].Type)
	assert.Equal(t, f.buyer, events[2].ActorID)
	assert.Equal(t, f.seller, events[2].RecipientID)
}

func TestBargain_NotificationFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture()
	notifier := sharedmock.NewMockNotificationDispatcher(ctrl)
	notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	uc := f.bargains(notifier)

	threadID := f.open(t, uc, 40)
	_, ok := f.store.Thread(threadID)
	assert.True(t, ok)
}

func TestBargain_NoNotificationOnFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture()
	notifier := sharedmock.NewMockNotificationDispatcher(ctrl)
	notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
	uc := f.bargains(notifier)

	_, err := uc.Open(ctx, commands.OpenBargainRequest{ProductID: f.product.ID, Offer: 150}, f.buyer)
	testutil.RequireKind(t, err, errs.ErrInvalidOffer)
}
