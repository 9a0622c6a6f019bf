//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bargain-market/internal/domain/order"
	"bargain-market/internal/domain/user"
	"bargain-market/internal/handler/api"
	resdto "bargain-market/internal/handler/dto/response"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"
	"bargain-market/tests/common/httptest"
	"bargain-market/tests/common/testutil"
	commandsmock "bargain-market/tests/mock/commands"
	queriesmock "bargain-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	userID       uuid.UUID
	role         user.Role
	orderID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	handler := api.NewOrderHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.userID = uuid.New()
	s.role = user.RoleBuyer
	s.orderID = uuid.New()

	g := s.router.Group("/api/orders", fakeAuth(&s.userID, &s.role))
	g.POST("", handler.Create)
	g.GET("", handler.List)
	g.POST("/checkout", handler.Checkout)
	g.GET("/:id", handler.Get)
	g.POST("/:id/status", handler.UpdateStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) orderView(threadID *uuid.UUID) *queries.OrderView {
	return &queries.OrderView{
		ID:                    s.orderID,
		Number:                "ORD-01JNB4XYZ",
		BuyerID:               s.userID,
		LinkedBargainThreadID: threadID,
		TotalAmount:           165,
		PaymentMethod:         "cod",
		Status:                "pending",
		Items: []queries.OrderItemView{
			{ProductID: uuid.New(), Quantity: 2, UnitPriceAtPurchase: 70, PriceSource: "bargain", LineTotal: 140},
			{ProductID: uuid.New(), Quantity: 1, UnitPriceAtPurchase: 25, PriceSource: "catalog", LineTotal: 25},
		},
		CreatedAt: handlerTime,
		UpdatedAt: handlerTime,
	}
}

// =============================================================================
// Create / Checkout
// =============================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	productID, threadID := uuid.New(), uuid.New()

	s.Run("success: 201 with frozen line prices", func() {
		s.mockCommands.EXPECT().Materialize(gomock.Any(), commands.MaterializeOrderRequest{
			Lines:          []commands.OrderLineRequest{{ProductID: productID, Quantity: 2}},
			LinkedThreadID: &threadID,
			PaymentMethod:  "cod",
		}, s.userID).Return(&commands.OrderResult{OrderID: s.orderID, TotalAmount: 165, Status: order.StatusPending}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orderID, s.userID, user.RoleBuyer).Return(s.orderView(&threadID), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", map[string]any{
			"lines":            []map[string]any{{"product_id": productID, "quantity": 2}},
			"linked_thread_id": threadID,
			"payment_method":   "cod",
		}, "token")

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(165), resp.TotalAmount)
		s.Equal(&threadID, resp.LinkedBargainThreadID)
		s.Require().Len(resp.Items, 2)
		s.Equal("bargain", resp.Items[0].PriceSource)
		s.Equal(int64(70), resp.Items[0].UnitPriceAtPurchase)
	})

	valid := map[string]any{
		"lines":          []map[string]any{{"product_id": productID, "quantity": 1}},
		"payment_method": "esewa",
	}

	testCases := []struct {
		name       string
		mutate     func(m map[string]any)
		setup      func()
		expectCode int
		expectMsg  string
	}{
		{
			name:       "error: unsupported payment method",
			mutate:     func(m map[string]any) { m["payment_method"] = "cheque" },
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request",
		},
		{
			name: "error: zero quantity",
			mutate: func(m map[string]any) {
				m["lines"] = []map[string]any{{"product_id": productID, "quantity": 0}}
			},
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request",
		},
		{
			name: "error: empty order",
			setup: func() {
				s.mockCommands.EXPECT().Materialize(gomock.Any(), gomock.Any(), s.userID).Return(nil, errs.ErrEmptyCart)
			},
			mutate:     func(m map[string]any) { delete(m, "lines") },
			expectCode: http.StatusBadRequest,
			expectMsg:  "Cart is empty",
		},
		{
			name: "error: insufficient stock",
			setup: func() {
				s.mockCommands.EXPECT().Materialize(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, errs.Mark(errors.New("only 0 left"), errs.ErrInsufficientStock))
			},
			expectCode: http.StatusConflict,
			expectMsg:  "Insufficient stock",
		},
		{
			name: "error: linked thread does not cover the lines",
			setup: func() {
				s.mockCommands.EXPECT().Materialize(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, errs.Mark(errors.New("thread covers no ordered product"), errs.ErrInvalidOffer))
			},
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "Invalid offer",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), valid)
			if tc.mutate != nil {
				tc.mutate(body)
			}
			if tc.setup != nil {
				tc.setup()
			}
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", body, "token")
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *OrderHandlerTestSuite) TestCheckout() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), commands.CheckoutRequest{PaymentMethod: "khalti"}, s.userID).
			Return(&commands.OrderResult{OrderID: s.orderID, Status: order.StatusPending}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orderID, s.userID, user.RoleBuyer).Return(s.orderView(nil), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/checkout", map[string]any{"payment_method": "khalti"}, "token")

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(s.orderID, resp.ID)
		s.Nil(resp.LinkedBargainThreadID)
	})

	s.Run("error: empty cart", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), s.userID).Return(nil, errs.ErrEmptyCart)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/checkout", map[string]any{"payment_method": "cod"}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Cart is empty")
	})
}

// =============================================================================
// Status
// =============================================================================

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	path := "/api/orders/" + s.orderID.String() + "/status"

	s.Run("success: admin advances", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleBuyer }()

		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.orderID, "advance", s.userID, user.RoleAdmin).
			Return(&commands.OrderResult{OrderID: s.orderID, OrderNumber: "ORD-1", TotalAmount: 165, Status: order.StatusProcessing}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"action": "advance"}, "token")

		var resp resdto.OrderStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("processing", resp.Status)
		s.Equal("ORD-1", resp.Number)
	})

	s.Run("error: buyer may not advance", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.orderID, "advance", s.userID, user.RoleBuyer).
			Return(nil, errs.Mark(errors.New("only admins advance orders"), errs.ErrUnauthorized))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"action": "advance"}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not permitted")
	})

	s.Run("error: cancel after delivery", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.orderID, "cancel", s.userID, user.RoleBuyer).
			Return(nil, errs.Mark(errors.New("delivered -> cancelled"), errs.ErrInvalidTransition))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"action": "cancel"}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Invalid status transition")
	})

	s.Run("error: unknown action rejected by binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"action": "refund"}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

// =============================================================================
// Reads
// =============================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orderID, s.userID, user.RoleBuyer).Return(s.orderView(nil), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+s.orderID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("error: someone else's order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orderID, s.userID, user.RoleBuyer).
			Return(nil, errs.Mark(errors.New("not the owner"), errs.ErrUnauthorized))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+s.orderID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *OrderHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().ListForBuyer(gomock.Any(), s.userID, (*queries.Cursor)(nil), 2).
		Return([]*queries.OrderListItem{{ID: s.orderID, Number: "ORD-1", Status: "pending", CreatedAt: handlerTime}},
			&queries.Cursor{After: "page-2"}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders?limit=2", nil, "token")

	var resp resdto.OrderListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp.Orders, 1)
	s.Equal("page-2", resp.NextCursor)
}

// =============================================================================
// Cart
// =============================================================================

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	userID       uuid.UUID
	role         user.Role
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	handler := api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.role = user.RoleBuyer

	g := s.router.Group("/api/cart", fakeAuth(&s.userID, &s.role))
	g.GET("", handler.Get)
	g.DELETE("", handler.Clear)
	g.POST("/price", handler.Price)
	g.PUT("/items/:product_id", handler.SetItem)
	g.DELETE("/items/:product_id", handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestSetItemReturnsRepricedCart() {
	productID, threadID := uuid.New(), uuid.New()
	s.mockCommands.EXPECT().SetItem(gomock.Any(), s.userID, productID, 2).Return(nil)
	s.mockQueries.EXPECT().GetCart(gomock.Any(), s.userID).Return(&queries.PricedCartView{
		BuyerID: s.userID,
		Lines: []queries.PricedLineView{
			{ProductID: productID, Quantity: 2, UnitPrice: 70, CatalogPrice: 100, Source: "bargain", SourceThreadID: &threadID, LineTotal: 140},
		},
		Total: 140,
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/"+productID.String(), map[string]any{"quantity": 2}, "token")

	var resp resdto.PricedCartResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(140), resp.Total)
	s.Require().Len(resp.Lines, 1)
	s.Equal("bargain", resp.Lines[0].Source)
	s.Equal(&threadID, resp.Lines[0].SourceThreadID)
}

func (s *CartHandlerTestSuite) TestSetItemErrors() {
	productID := uuid.New()

	s.Run("quantity out of range", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/"+productID.String(), map[string]any{"quantity": 1000}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown product", func() {
		s.mockCommands.EXPECT().SetItem(gomock.Any(), s.userID, productID, 1).
			Return(errs.Mark(errors.New("product not found"), errs.ErrNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/"+productID.String(), map[string]any{"quantity": 1}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *CartHandlerTestSuite) TestPriceDoesNotTouchStoredCart() {
	productID := uuid.New()
	s.mockQueries.EXPECT().PriceLines(gomock.Any(), s.userID, []queries.CartLineInput{{ProductID: productID, Quantity: 3}}).
		Return(&queries.PricedCartView{BuyerID: s.userID, Total: 300}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/price",
		map[string]any{"lines": []map[string]any{{"product_id": productID, "quantity": 3}}}, "token")

	var resp resdto.PricedCartResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(300), resp.Total)
	s.NotNil(resp.Lines)
}

func (s *CartHandlerTestSuite) TestRemoveAndClear() {
	productID := uuid.New()

	s.Run("remove", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.userID, productID).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/"+productID.String(), nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("remove missing line", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.userID, productID).
			Return(errs.Mark(errors.New("cart line not found"), errs.ErrNotFound))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/"+productID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})

	s.Run("clear", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), s.userID).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})
}

// =============================================================================
// Prices
// =============================================================================

type PriceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBargainCommands
	mockQueries  *queriesmock.MockPriceQueries
	userID       uuid.UUID
	role         user.Role
}

func (s *PriceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBargainCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPriceQueries(s.mockCtrl)
	handler := api.NewPriceHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.role = user.RoleBuyer

	g := s.router.Group("/api/prices", fakeAuth(&s.userID, &s.role))
	g.GET("/:product_id", handler.Get)
	g.DELETE("/:buyer_id/:product_id", handler.Retract)
}

func (s *PriceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PriceHandlerTestSuite))
}

func (s *PriceHandlerTestSuite) TestGet() {
	productID, threadID := uuid.New(), uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetResolvedPrice(gomock.Any(), s.userID, productID).Return(&queries.ResolvedPriceView{
			BuyerID: s.userID, ProductID: productID, PriceAmount: 70, SourceThreadID: threadID, ResolvedAt: handlerTime,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/prices/"+productID.String(), nil, "token")

		var resp resdto.ResolvedPriceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(70), resp.PriceAmount)
		s.Equal(threadID, resp.SourceThreadID)
	})

	s.Run("no negotiated price", func() {
		s.mockQueries.EXPECT().GetResolvedPrice(gomock.Any(), s.userID, productID).Return(nil, errs.ErrNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/prices/"+productID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *PriceHandlerTestSuite) TestRetract() {
	buyerID, productID := uuid.New(), uuid.New()
	path := "/api/prices/" + buyerID.String() + "/" + productID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().RetractPrice(gomock.Any(), s.userID, buyerID, productID).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not the product owner", func() {
		s.mockCommands.EXPECT().RetractPrice(gomock.Any(), s.userID, buyerID, productID).
			Return(errs.Mark(errors.New("not the product owner"), errs.ErrUnauthorized))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not permitted")
	})
}
