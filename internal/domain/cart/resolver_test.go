//go:build unit

package cart_test

import (
	"math"
	"testing"
	"time"

	"bargain-market/internal/domain/cart"
	"bargain-market/internal/domain/pricing"
	"bargain-market/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	productID := uuid.New()

	for _, qty := range []int{1, 2, cart.MaxQuantity} {
		l, err := cart.NewLine(productID, qty)
		require.NoError(t, err)
		assert.Equal(t, qty, l.Quantity())
	}
	for _, qty := range []int{0, -1, cart.MaxQuantity + 1} {
		_, err := cart.NewLine(productID, qty)
		require.ErrorIs(t, err, cart.ErrInvalidQuantity, "qty %d", qty)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	}
	_, err := cart.NewLine(uuid.Nil, 1)
	require.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestResolve(t *testing.T) {
	buyerID := uuid.New()
	bargained, plain := uuid.New(), uuid.New()
	threadID := uuid.New()

	ledger := pricing.NewLedger(buyerID, []*pricing.ResolvedPrice{
		pricing.ReconstructResolvedPrice(buyerID, bargained, pricing.MoneyOf(7000), threadID, time.Now()),
	})
	catalog := map[uuid.UUID]pricing.Money{
		bargained: pricing.MoneyOf(10000),
		plain:     pricing.MoneyOf(2500),
	}

	l1, err := cart.NewLine(bargained, 2)
	require.NoError(t, err)
	l2, err := cart.NewLine(plain, 3)
	require.NoError(t, err)

	priced, err := cart.Resolve([]cart.Line{l1, l2}, ledger, catalog)
	require.NoError(t, err)

	want := []cart.PricedLine{
		{ProductID: bargained, Quantity: 2, UnitPrice: pricing.MoneyOf(7000), Source: cart.SourceBargain, SourceThreadID: &threadID},
		{ProductID: plain, Quantity: 3, UnitPrice: pricing.MoneyOf(2500), Source: cart.SourceCatalog},
	}
	if diff := cmp.Diff(want, priced, cmp.AllowUnexported(pricing.Money{})); diff != "" {
		t.Errorf("priced lines mismatch (-want +got):\n%s", diff)
	}

	lineTotal, err := priced[0].LineTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(14000), lineTotal.Amount())
	total, err := cart.Total(priced)
	require.NoError(t, err)
	assert.Equal(t, int64(21500), total.Amount())
}

func TestResolve_TotalOverflowIsInvalidPrice(t *testing.T) {
	huge, small := uuid.New(), uuid.New()
	catalog := map[uuid.UUID]pricing.Money{
		huge:  pricing.MoneyOf(10_000_000_000_000_000),
		small: pricing.MoneyOf(math.MaxInt64 - 5),
	}
	ledger := pricing.NewLedger(uuid.New(), nil)

	t.Run("single line", func(t *testing.T) {
		line, err := cart.NewLine(huge, cart.MaxQuantity)
		require.NoError(t, err)

		priced, err := cart.Resolve([]cart.Line{line}, ledger, catalog)
		require.ErrorIs(t, err, errs.ErrInvalidPrice)
		assert.Nil(t, priced)
	})

	t.Run("sum of lines", func(t *testing.T) {
		l1, err := cart.NewLine(small, 1)
		require.NoError(t, err)
		l2, err := cart.NewLine(huge, 1)
		require.NoError(t, err)

		_, err = cart.Resolve([]cart.Line{l1, l2}, ledger, catalog)
		require.ErrorIs(t, err, errs.ErrInvalidPrice)
	})
}

func TestResolve_EmptyLedgerUsesCatalog(t *testing.T) {
	productID := uuid.New()
	line, err := cart.NewLine(productID, 1)
	require.NoError(t, err)

	priced, err := cart.Resolve([]cart.Line{line}, pricing.NewLedger(uuid.New(), nil), map[uuid.UUID]pricing.Money{
		productID: pricing.MoneyOf(999),
	})
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.Equal(t, cart.SourceCatalog, priced[0].Source)
	assert.Nil(t, priced[0].SourceThreadID)
	assert.Equal(t, int64(999), priced[0].UnitPrice.Amount())
}

func TestResolve_UnknownProduct(t *testing.T) {
	line, err := cart.NewLine(uuid.New(), 1)
	require.NoError(t, err)

	_, err = cart.Resolve([]cart.Line{line}, pricing.NewLedger(uuid.New(), nil), map[uuid.UUID]pricing.Money{})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProductIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	l1, _ := cart.NewLine(a, 1)
	l2, _ := cart.NewLine(b, 1)
	l3, _ := cart.NewLine(a, 4)

	assert.Equal(t, []uuid.UUID{a, b}, cart.ProductIDs([]cart.Line{l1, l2, l3}))
}
