package api

import (
	"context"
	"net/http"

	reqdto "bargain-market/internal/handler/dto/request"
	resdto "bargain-market/internal/handler/dto/response"
	"bargain-market/internal/handler/httperr"
	"bargain-market/internal/handler/middleware"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
	cfg  config.BargainConfig
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, cfg config.Config) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, cfg: cfg.Bargain}
}

// @Summary Create order
// @Description Materialize the given lines into an order at their resolved prices
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Materialize(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondOrder(c, http.StatusCreated, result.OrderID)
}

// @Summary Checkout
// @Description Materialize the stored cart into an order and empty the cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondOrder(c, http.StatusCreated, result.OrderID)
}

// @Summary Get order
// @Description Get an order with its frozen line prices (owner or admin)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	h.respondOrder(c, http.StatusOK, id)
}

// @Summary List orders
// @Description List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	items, next, err := h.q.ListForBuyer(c.Request.Context(), userID, cursorFrom(c), limitFrom(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOrderList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update order status
// @Description Advance an order one step (admin) or cancel it (owner or admin)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Action"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{id}/status [post]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	role, _ := middleware.GetUserRole(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := withConflictRetry(c.Request.Context(), h.cfg.ConflictRetries, func(ctx context.Context) (*commands.OrderResult, error) {
		return h.cmds.UpdateStatus(ctx, id, req.Action, userID, role)
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderResult(result))
}

func (h *OrderHandler) respondOrder(c *gin.Context, status int, id uuid.UUID) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}
