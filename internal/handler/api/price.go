package api

import (
	"net/http"

	resdto "bargain-market/internal/handler/dto/response"
	"bargain-market/internal/handler/httperr"
	"bargain-market/internal/handler/middleware"
	"bargain-market/internal/usecase/commands"
	"bargain-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PriceHandler struct {
	cmds commands.BargainCommands
	q    queries.PriceQueries
}

func NewPriceHandler(cmds commands.BargainCommands, q queries.PriceQueries) *PriceHandler {
	return &PriceHandler{cmds: cmds, q: q}
}

// @Summary Get resolved price
// @Description Get the caller's negotiated price for a product
// @Tags prices
// @Produce json
// @Security BearerAuth
// @Param product_id path string true "Product ID"
// @Success 200 {object} resdto.ResolvedPriceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/prices/{product_id} [get]
func (h *PriceHandler) Get(c *gin.Context) {
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
	view, err := h.q.GetResolvedPrice(c.Request.Context(), userID, productID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromResolvedPriceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Retract resolved price
// @Description The product owner clears a buyer's negotiated price
// @Tags prices
// @Security BearerAuth
// @Param buyer_id path string true "Buyer ID"
// @Param product_id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/prices/{buyer_id}/{product_id} [delete]
func (h *PriceHandler) Retract(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	buyerID, err := uuid.Parse(c.Param("buyer_id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid buyer_id")
		return
	}
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product_id")
		return
	}
	if err := h.cmds.RetractPrice(c.Request.Context(), userID, buyerID, productID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
