//go:build unit

package bargain_test

import (
	"testing"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/domain/pricing"
	"bargain-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BargainBuilder)
	errIs  error
}

func TestOpen(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBargainBuilder()
		thread, ev, err := bargain.Open(b.BuyerID, b.SellerID, b.ProductID,
			pricing.MoneyOf(10000), pricing.MoneyOf(4000), b.Now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, thread.ID())
		assert.Equal(t, bargain.StatusPending, thread.Status())
		assert.Equal(t, int64(4000), thread.CurrentOffer().Amount())
		assert.Equal(t, int64(10000), thread.CatalogPrice().Amount())
		assert.Nil(t, thread.CounterOffer())
		assert.Nil(t, thread.AgreedPrice())
		assert.Equal(t, int64(1), thread.Version())
		assert.Equal(t, thread.CreatedAt(), thread.UpdatedAt())
		assert.True(t, thread.IsActive())

		assert.Equal(t, bargain.EventOffer, ev.Type)
		assert.Equal(t, b.SellerID, ev.RecipientID)
		assert.Equal(t, b.BuyerID, ev.ActorID)
		assert.Equal(t, thread.ID(), ev.ThreadID)
	})

	t.Run("offer bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "smallest positive offer", mutate: func(b *builder.BargainBuilder) { b.WithOffer(1) }},
			{name: "one below catalog price", mutate: func(b *builder.BargainBuilder) { b.WithOffer(9999) }},
			{name: "zero offer", mutate: func(b *builder.BargainBuilder) { b.WithOffer(0) }, errIs: bargain.ErrInvalidOffer},
			{name: "negative offer", mutate: func(b *builder.BargainBuilder) { b.WithOffer(-100) }, errIs: bargain.ErrInvalidOffer},
			{name: "offer equal to catalog price", mutate: func(b *builder.BargainBuilder) { b.WithOffer(10000) }, errIs: bargain.ErrInvalidOffer},
			{name: "offer above catalog price", mutate: func(b *builder.BargainBuilder) { b.WithOffer(12000) }, errIs: bargain.ErrInvalidOffer},
		})
	})

	t.Run("participants", func(t *testing.T) {
		same := uuid.New()
		runCases(t, []testCase{
			{
				name:   "seller bargaining on own product",
				mutate: func(b *builder.BargainBuilder) { b.WithBuyerID(same).WithSellerID(same) },
				errIs:  bargain.ErrUnauthorized,
			},
			{
				name:   "non-positive catalog price",
				mutate: func(b *builder.BargainBuilder) { b.WithCatalogPrice(0) },
				errIs:  pricing.ErrInvalidPrice,
			},
		})
	})
}

func TestThread_Scenario(t *testing.T) {
	// offer 40 on 100, counter 70, buyer accepts at 70
	b := builder.NewBargainBuilder().WithCatalogPrice(10000).WithOffer(4000)
	thread, err := b.BuildDomain()
	require.NoError(t, err)

	ev, err := thread.Counter(b.Seller(), pricing.MoneyOf(7000), b.Now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, bargain.StatusCountered, thread.Status())
	require.NotNil(t, thread.CounterOffer())
	assert.Equal(t, int64(7000), thread.CounterOffer().Amount())
	assert.Equal(t, bargain.EventCounter, ev.Type)
	assert.Equal(t, b.BuyerID, ev.RecipientID)

	accepted, ev, err := thread.Accept(b.Buyer(), b.Now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(7000), accepted.Amount())
	assert.Equal(t, bargain.StatusAccepted, thread.Status())
	assert.Nil(t, thread.CounterOffer())
	require.NotNil(t, thread.AgreedPrice())
	assert.Equal(t, int64(7000), thread.AgreedPrice().Amount())
	assert.Equal(t, bargain.EventAccepted, ev.Type)
	assert.Equal(t, b.SellerID, ev.RecipientID)
	assert.Equal(t, b.Now.Add(2*time.Minute), thread.UpdatedAt())
}

func TestThread_Counter(t *testing.T) {
	b := builder.NewBargainBuilder()

	t.Run("counter again while countered", func(t *testing.T) {
		thread, err := b.BuildCountered(8000)
		require.NoError(t, err)

		_, err = thread.Counter(b.Seller(), pricing.MoneyOf(7500), b.Now)
		require.NoError(t, err)
		assert.Equal(t, int64(7500), thread.CounterOffer().Amount())
	})

	t.Run("buyer cannot counter", func(t *testing.T) {
		thread, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = thread.Counter(bargain.SellerActor(b.BuyerID), pricing.MoneyOf(7000), b.Now)
		require.ErrorIs(t, err, bargain.ErrUnauthorized)

		_, err = thread.Counter(b.Buyer(), pricing.MoneyOf(7000), b.Now)
		require.ErrorIs(t, err, bargain.ErrUnauthorized)
		assert.Equal(t, bargain.StatusPending, thread.Status())
	})

	t.Run("counter out of bounds", func(t *testing.T) {
		thread, err := b.BuildDomain()
		require.NoError(t, err)

		for _, v := range []int64{0, -1, 10000, 15000} {
			_, err = thread.Counter(b.Seller(), pricing.MoneyOf(v), b.Now)
			require.ErrorIs(t, err, bargain.ErrInvalidOffer, "value %d", v)
		}
		assert.Nil(t, thread.CounterOffer())
		assert.Equal(t, bargain.StatusPending, thread.Status())
	})
}

func TestThread_Revise(t *testing.T) {
	b := builder.NewBargainBuilder()
	thread, err := b.BuildCountered(8000)
	require.NoError(t, err)

	ev, err := thread.Revise(b.Buyer(), pricing.MoneyOf(6000), b.Now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, bargain.StatusPending, thread.Status())
	assert.Equal(t, int64(6000), thread.CurrentOffer().Amount())
	assert.Nil(t, thread.CounterOffer(), "revision clears the outstanding counter")
	assert.Equal(t, bargain.EventOffer, ev.Type)
	assert.Equal(t, b.SellerID, ev.RecipientID)

	_, err = thread.Revise(b.Seller(), pricing.MoneyOf(6500), b.Now)
	require.ErrorIs(t, err, bargain.ErrUnauthorized)

	_, err = thread.Revise(b.Buyer(), pricing.MoneyOf(10000), b.Now)
	require.ErrorIs(t, err, bargain.ErrInvalidOffer)
}

func TestThread_Accept(t *testing.T) {
	b := builder.NewBargainBuilder()

	t.Run("seller accepts buyer offer", func(t *testing.T) {
		thread, err := b.BuildDomain()
		require.NoError(t, err)

		accepted, ev, err := thread.Accept(b.Seller(), b.Now)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), accepted.Amount())
		assert.Equal(t, bargain.StatusAccepted, thread.Status())
		assert.Equal(t, b.BuyerID, ev.RecipientID)
	})

	t.Run("seller accepts current offer while countered", func(t *testing.T) {
		thread, err := b.BuildCountered(8000)
		require.NoError(t, err)

		accepted, _, err := thread.Accept(b.Seller(), b.Now)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), accepted.Amount())
	})

	t.Run("buyer with no counter has nothing to accept", func(t *testing.T) {
		thread, err := b.BuildDomain()
		require.NoError(t, err)

		_, _, err = thread.Accept(b.Buyer(), b.Now)
		require.ErrorIs(t, err, bargain.ErrNothingToAccept)
		assert.Equal(t, bargain.StatusPending, thread.Status())
	})

	t.Run("stranger cannot accept", func(t *testing.T) {
		thread, err := b.BuildCountered(8000)
		require.NoError(t, err)

		_, _, err = thread.Accept(bargain.BuyerActor(uuid.New()), b.Now)
		require.ErrorIs(t, err, bargain.ErrUnauthorized)
		_, _, err = thread.Accept(bargain.Actor{UserID: b.BuyerID, Role: "admin"}, b.Now)
		require.ErrorIs(t, err, bargain.ErrUnauthorized)
	})
}

func TestThread_Reject(t *testing.T) {
	b := builder.NewBargainBuilder()

	for _, actor := range []bargain.Actor{b.Buyer(), b.Seller()} {
		t.Run("rejected by "+actor.Role.String(), func(t *testing.T) {
			thread, err := b.BuildCountered(8000)
			require.NoError(t, err)

			ev, err := thread.Reject(actor, b.Now)
			require.NoError(t, err)
			assert.Equal(t, bargain.StatusRejected, thread.Status())
			assert.Nil(t, thread.CounterOffer())
			assert.Nil(t, thread.AgreedPrice())
			assert.Equal(t, bargain.EventRejected, ev.Type)
			assert.NotEqual(t, actor.UserID, ev.RecipientID)
		})
	}
}

func TestThread_AcceptRejectRequireParticipant(t *testing.T) {
	b := builder.NewBargainBuilder()

	outsiders := []struct {
		name  string
		actor bargain.Actor
	}{
		{"stranger as buyer", bargain.BuyerActor(uuid.New())},
		{"stranger as seller", bargain.SellerActor(uuid.New())},
		{"seller claiming the buyer side", bargain.BuyerActor(b.SellerID)},
		{"buyer claiming the seller side", bargain.SellerActor(b.BuyerID)},
		{"unknown role", bargain.Actor{UserID: b.BuyerID, Role: "admin"}},
	}

	for _, o := range outsiders {
		t.Run(o.name, func(t *testing.T) {
			thread, err := b.BuildCountered(8000)
			require.NoError(t, err)

			_, _, err = thread.Accept(o.actor, b.Now)
			require.ErrorIs(t, err, bargain.ErrUnauthorized)
			_, err = thread.Reject(o.actor, b.Now)
			require.ErrorIs(t, err, bargain.ErrUnauthorized)
			assert.Equal(t, bargain.StatusCountered, thread.Status())
		})
	}
}

func TestThread_TerminalStatesAreClosed(t *testing.T) {
	b := builder.NewBargainBuilder()
	accepted, err := b.BuildAccepted(7000)
	require.NoError(t, err)
	rejected, err := b.BuildRejected()
	require.NoError(t, err)

	for _, thread := range []*bargain.Thread{accepted, rejected} {
		t.Run(thread.Status().String(), func(t *testing.T) {
			before := thread.UpdatedAt()

			_, err := thread.Counter(b.Seller(), pricing.MoneyOf(5000), b.Now)
			assert.ErrorIs(t, err, bargain.ErrThreadClosed)
			_, err = thread.Revise(b.Buyer(), pricing.MoneyOf(5000), b.Now)
			assert.ErrorIs(t, err, bargain.ErrThreadClosed)
			_, _, err = thread.Accept(b.Buyer(), b.Now)
			assert.ErrorIs(t, err, bargain.ErrThreadClosed)
			_, _, err = thread.Accept(b.Seller(), b.Now)
			assert.ErrorIs(t, err, bargain.ErrThreadClosed)
			_, err = thread.Reject(b.Buyer(), b.Now)
			assert.ErrorIs(t, err, bargain.ErrThreadClosed)
			_, err = thread.Reject(b.Seller(), b.Now)
			assert.ErrorIs(t, err, bargain.ErrThreadClosed)

			assert.Equal(t, before, thread.UpdatedAt())
		})
	}
}

func TestThread_PostMessage(t *testing.T) {
	b := builder.NewBargainBuilder()
	thread, err := b.BuildAccepted(7000)
	require.NoError(t, err)

	text, err := bargain.NewMessageText("  when can you ship?  ", 0)
	require.NoError(t, err)

	at := b.Now.Add(time.Hour)
	msg, err := thread.PostMessage(b.BuyerID, text, at)
	require.NoError(t, err, "messages are allowed after a thread closes")
	assert.Equal(t, "when can you ship?", msg.Text())
	assert.Equal(t, b.BuyerID, msg.SenderID())
	assert.Equal(t, thread.ID(), msg.ThreadID())
	assert.Len(t, thread.Messages(), 1)
	assert.Equal(t, at, thread.UpdatedAt())

	_, err = thread.PostMessage(uuid.New(), text, at)
	require.ErrorIs(t, err, bargain.ErrUnauthorized)
}

func TestNewMessageText(t *testing.T) {
	_, err := bargain.NewMessageText("   ", 10)
	require.ErrorIs(t, err, bargain.ErrEmptyMessage)

	_, err = bargain.NewMessageText("ありがとうございます!!", 10)
	require.ErrorIs(t, err, bargain.ErrMessageTooLong)

	m, err := bargain.NewMessageText("नमस्ते", 10)
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", m.String())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBargainBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
