//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bargain-market/internal/domain/user"
	"bargain-market/internal/infra"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/queries"
	"bargain-market/tests/common/testutil"
	queriesmock "bargain-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	orderID := uuid.New()
	view := &queries.OrderView{ID: orderID, BuyerID: buyerID, Status: "pending", TotalAmount: 140}

	testCases := []struct {
		name    string
		actorID uuid.UUID
		role    user.Role
		findErr error
		errIs   error
	}{
		{name: "success: owner", actorID: buyerID, role: user.RoleBuyer},
		{name: "success: admin", actorID: uuid.New(), role: user.RoleAdmin},
		{name: "error: other buyer", actorID: uuid.New(), role: user.RoleBuyer, errIs: errs.ErrUnauthorized},
		{
			name:    "error: missing order",
			actorID: buyerID,
			role:    user.RoleBuyer,
			findErr: infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound),
			errIs:   errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockOrderReadStore(ctrl)
			if tc.findErr != nil {
				store.EXPECT().FindByID(ctx, orderID).Return(nil, tc.findErr)
			} else {
				store.EXPECT().FindByID(ctx, orderID).Return(view, nil)
			}

			got, err := queries.NewOrderQueries(store).GetByID(ctx, orderID, tc.actorID, tc.role)
			if tc.errIs != nil {
				testutil.RequireKind(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestOrderQueries_ListForBuyer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	buyerID := uuid.New()
	rows := make([]*queries.OrderListItem, 3)
	for i := range rows {
		rows[i] = &queries.OrderListItem{ID: uuid.New(), CreatedAt: baseTime.Add(-time.Duration(i) * time.Hour)}
	}

	store := queriesmock.NewMockOrderReadStore(ctrl)
	gomock.InOrder(
		store.EXPECT().FindByBuyerFirstPage(ctx, buyerID, int32(3)).Return(rows, nil),
		store.EXPECT().FindByBuyerKeyset(ctx, buyerID, rows[1].CreatedAt, rows[1].ID, int32(3)).Return(rows[2:], nil),
	)
	q := queries.NewOrderQueries(store)

	page, next, err := q.ListForBuyer(ctx, buyerID, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)

	page, next, err = q.ListForBuyer(ctx, buyerID, next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, rows[2].ID, page[0].ID)
	assert.Nil(t, next)
}

func TestPriceQueries(t *testing.T) {
	ctx := context.Background()
	buyerID, productID := uuid.New(), uuid.New()

	t.Run("resolved price found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		want := &queries.ResolvedPriceView{BuyerID: buyerID, ProductID: productID, PriceAmount: 70}
		store := queriesmock.NewMockLedgerReadStore(ctrl)
		store.EXPECT().Find(ctx, buyerID, productID).Return(want, nil)

		got, err := queries.NewPriceQueries(store).GetResolvedPrice(ctx, buyerID, productID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing price is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockLedgerReadStore(ctrl)
		store.EXPECT().Find(ctx, buyerID, productID).
			Return(nil, infra.WrapRepoErr("resolved price not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewPriceQueries(store).GetResolvedPrice(ctx, buyerID, productID)
		testutil.RequireKind(t, err, errs.ErrNotFound)
	})

	t.Run("empty product list skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockLedgerReadStore(ctrl)
		got, err := queries.NewPriceQueries(store).ListResolvedPrices(ctx, buyerID, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
