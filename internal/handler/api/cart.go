package api

import (
	"net/http"

	reqdto "bargain-market/internal/handler/dto/request"
	resdto "bargain-market/internal/handler/dto/response"
	"bargain-market/internal/handler/httperr"
	"bargain-market/internal/handler/middleware"
	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Price the caller's stored cart with negotiated prices applied
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PricedCartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.writeCart(c, view)
}

// @Summary Price lines
// @Description Price arbitrary lines for the caller without storing them
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PriceCartRequest true "Lines"
// @Success 200 {object} resdto.PricedCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/price [post]
func (h *CartHandler) Price(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.PriceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.q.PriceLines(c.Request.Context(), userID, req.ToQuery())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.writeCart(c, view)
}

// @Summary Set cart item
// @Description Add a product to the cart or replace its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product_id path string true "Product ID"
// @Param request body reqdto.SetCartItemRequest true "Quantity"
// @Success 200 {object} resdto.PricedCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items/{product_id} [put]
func (h *CartHandler) SetItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product_id")
		return
	}
	var req reqdto.SetCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.SetItem(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.Get(c)
}

// @Summary Remove cart item
// @Tags cart
// @Security BearerAuth
// @Param product_id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product_id")
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), userID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) writeCart(c *gin.Context, view *queries.PricedCartView) {
	resp, err := resdto.FromPricedCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
