//go:build e2e

package bargain_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"bargain-market/internal/domain/user"
	"bargain-market/internal/handler/dto/response"
	"bargain-market/internal/infra/notify"
	"bargain-market/tests/common/authtest"
	"bargain-market/tests/common/dbtest"
	"bargain-market/tests/common/httptest"
	"bargain-market/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bargainsURL = "/api/bargains"
	cartURL     = "/api/cart"
	ordersURL   = "/api/orders"
)

type BargainSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BargainSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BargainSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBargainSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BargainSuite))
}

type party struct {
	id    uuid.UUID
	token string
}

func (s *BargainSuite) newParty(t *testing.T, role user.Role) party {
	id := uuid.New()
	return party{id: id, token: s.jwt.GenerateToken(t, id, role)}
}

func (s *BargainSuite) open(t *testing.T, buyer party, productID uuid.UUID, offer int64) response.BargainThreadResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bargainsURL,
		map[string]any{"product_id": productID, "offer": offer}, buyer.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var thread response.BargainThreadResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &thread))
	return thread
}

func threadURL(id uuid.UUID, action string) string {
	return fmt.Sprintf("%s/%s/%s", bargainsURL, id, action)
}

// =============================================================================
// Negotiation through checkout
// =============================================================================

func (s *BargainSuite) TestNegotiatedPriceReachesCheckout() {
	s.Run("Normal case: counter accepted, cart and order use the agreed price", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Dhaka topi", 100, 10)

		thread := s.open(t, buyer, productID, 60)
		assert.Equal(t, "pending", thread.Status)
		assert.Equal(t, int64(1), thread.Version)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(thread.ID, "counter"), map[string]any{"amount": 80}, seller.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(thread.ID, "accept"), map[string]any{"as": "buyer"}, buyer.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var accepted response.BargainThreadResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &accepted))
		expected := response.BargainThreadResponse{
			ID:           thread.ID,
			BuyerID:      buyer.id,
			SellerID:     seller.id,
			ProductID:    productID,
			ProductName:  "Dhaka topi",
			CatalogPrice: 100,
			CurrentOffer: 60,
			AgreedPrice:  ptr(int64(80)),
			Status:       "accepted",
			Version:      3,
			Messages:     []response.BargainMessageResponse{},
		}
		opts := cmpopts.IgnoreFields(response.BargainThreadResponse{}, "CounterOffer", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, accepted, opts); diff != "" {
			t.Errorf("accepted thread mismatch (-want +got):\n%s", diff)
		}

		amount, ok := dbtest.ResolvedPrice(t, s.DB, buyer.id, productID)
		require.True(t, ok, "ledger entry should exist after acceptance")
		assert.Equal(t, int64(80), amount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cartURL+"/items/"+productID.String(), map[string]any{"quantity": 2}, buyer.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cart response.PricedCartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "bargain", cart.Lines[0].Source)
		assert.Equal(t, int64(160), cart.Total)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/checkout", map[string]any{"payment_method": "cod"}, buyer.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var order response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &order))
		assert.Equal(t, int64(160), order.TotalAmount)
		assert.Equal(t, "pending", order.Status)
		require.NotNil(t, order.LinkedBargainThreadID)
		assert.Equal(t, thread.ID, *order.LinkedBargainThreadID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(80), order.Items[0].UnitPriceAtPurchase)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, buyer.token)
		require.Equal(t, http.StatusOK, w.Code)
		cart = response.PricedCartResponse{}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		assert.Empty(t, cart.Lines, "checkout empties the cart")
		assert.Equal(t, 10, dbtest.ProductStock(t, s.DB, productID), "checkout leaves stock untouched")

		// the ledger outlives the order
		_, ok = dbtest.ResolvedPrice(t, s.DB, buyer.id, productID)
		assert.True(t, ok)
	})

	s.Run("Normal case: another buyer still pays the catalog price", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		other := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Pashmina shawl", 300, 5)

		thread := s.open(t, buyer, productID, 250)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(thread.ID, "accept"), map[string]any{"as": "seller"}, seller.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartURL+"/price",
			map[string]any{"lines": []map[string]any{{"product_id": productID, "quantity": 1}}}, other.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cart response.PricedCartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		assert.Equal(t, int64(300), cart.Total)
		assert.Equal(t, "catalog", cart.Lines[0].Source)
	})
}

// =============================================================================
// Thread rules
// =============================================================================

func (s *BargainSuite) TestThreadRules() {
	s.Run("Error case: second active thread on the same product", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Singing bowl", 100, 3)

		s.open(t, buyer, productID, 50)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bargainsURL,
			map[string]any{"product_id": productID, "offer": 55}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Normal case: re-open after rejection", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Prayer flags", 100, 3)

		first := s.open(t, buyer, productID, 40)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(first.ID, "reject"), map[string]any{"as": "seller"}, seller.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		second := s.open(t, buyer, productID, 45)
		assert.NotEqual(t, first.ID, second.ID)
	})

	s.Run("Error case: offer at catalog price", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Thangka", 100, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bargainsURL,
			map[string]any{"product_id": productID, "offer": 100}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid offer")
	})

	s.Run("Error case: outsider cannot read the thread", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		outsider := s.newParty(t, user.RoleBuyer)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Khukuri", 100, 1)

		thread := s.open(t, buyer, productID, 70)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bargainsURL+"/"+thread.ID.String(), nil, outsider.token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleBuyer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bargainsURL, nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *BargainSuite) TestConcurrentDecisions() {
	s.Run("Normal case: exactly one decision wins", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Lokta paper", 100, 50)

		thread := s.open(t, buyer, productID, 60)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(thread.ID, "counter"), map[string]any{"amount": 80}, seller.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		const workers = 6
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				action := "accept"
				if i%2 == 1 {
					action = "reject"
				}
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(thread.ID, action), map[string]any{"as": "buyer"}, buyer.token)
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		var ok, conflict int
		for _, c := range codes {
			switch c {
			case http.StatusOK:
				ok++
			case http.StatusConflict:
				conflict++
			}
		}
		assert.Equal(t, 1, ok, "codes: %v", codes)
		assert.Equal(t, workers-1, conflict, "codes: %v", codes)
	})
}

// =============================================================================
// Notifications
// =============================================================================

func (s *BargainSuite) TestNotificationsReachInboxes() {
	s.Run("Normal case: each transition lands in the other party's inbox", func() {
		t := s.T()
		ctx := context.Background()
		buyer := s.newParty(t, user.RoleBuyer)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Chiyaa set", 100, 4)

		thread := s.open(t, buyer, productID, 60)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, threadURL(thread.ID, "counter"), map[string]any{"amount": 85}, seller.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		sellerInbox, err := s.Redis.LRange(ctx, s.InboxKey(seller.id), 0, -1).Result()
		require.NoError(t, err)
		require.Len(t, sellerInbox, 1)
		var offer notify.Payload
		require.NoError(t, json.Unmarshal([]byte(sellerInbox[0]), &offer))
		assert.Equal(t, "offer", offer.Type)
		assert.Equal(t, int64(60), offer.Amount)

		buyerInbox, err := s.Redis.LRange(ctx, s.InboxKey(buyer.id), 0, -1).Result()
		require.NoError(t, err)
		require.Len(t, buyerInbox, 1)
		var counter notify.Payload
		require.NoError(t, json.Unmarshal([]byte(buyerInbox[0]), &counter))
		assert.Equal(t, "counter", counter.Type)
		assert.Equal(t, thread.ID.String(), counter.ThreadID)
		assert.Equal(t, int64(85), counter.Amount)
	})
}

// =============================================================================
// Order status
// =============================================================================

func (s *BargainSuite) TestOrderStatus() {
	s.Run("Normal case: admin advances, buyer cannot cancel once delivered", func() {
		t := s.T()
		buyer := s.newParty(t, user.RoleBuyer)
		admin := s.newParty(t, user.RoleAdmin)
		seller := s.newParty(t, user.RoleSeller)
		productID := dbtest.CreateTestProduct(t, s.DB, seller.id, "Dhaka fabric", 40, 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{
			"lines":          []map[string]any{{"product_id": productID, "quantity": 3}},
			"payment_method": "khalti",
		}, buyer.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var order response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &order))
		assert.Equal(t, int64(120), order.TotalAmount)
		assert.Nil(t, order.LinkedBargainThreadID)

		statusURL := ordersURL + "/" + order.ID.String() + "/status"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, statusURL, map[string]any{"action": "advance"}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		for _, want := range []string{"processing", "shipped", "delivered"} {
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, statusURL, map[string]any{"action": "advance"}, admin.token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var res response.OrderStatusResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			assert.Equal(t, want, res.Status)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, statusURL, map[string]any{"action": "cancel"}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid status transition")
	})
}

func ptr[T any](v T) *T { return &v }
