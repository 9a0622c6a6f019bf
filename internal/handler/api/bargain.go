package api

import (
	"context"
	"net/http"
	"strconv"

	"bargain-market/internal/domain/bargain"
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

type BargainHandler struct {
	cmds commands.BargainCommands
	q    queries.BargainQueries
	cfg  config.BargainConfig
}

func NewBargainHandler(cmds commands.BargainCommands, q queries.BargainQueries, cfg config.Config) *BargainHandler {
	return &BargainHandler{cmds: cmds, q: q, cfg: cfg.Bargain}
}

// @Summary Open bargain
// @Description Open a negotiation on a product with a first offer below the catalog price
// @Tags bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenBargainRequest true "Open bargain request"
// @Success 201 {object} resdto.BargainThreadResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bargains [post]
func (h *BargainHandler) Open(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.OpenBargainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Open(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondThread(c, http.StatusCreated, result.ThreadID)
}

// @Summary Get bargain
// @Description Get a bargain thread with its messages (participants and admins)
// @Tags bargains
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Success 200 {object} resdto.BargainThreadResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bargains/{id} [get]
func (h *BargainHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	h.respondThread(c, http.StatusOK, id)
}

// @Summary Find active bargain
// @Description Find the caller's pending or countered thread for a product
// @Tags bargains
// @Produce json
// @Security BearerAuth
// @Param product_id query string true "Product ID"
// @Success 200 {object} resdto.BargainThreadResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bargains/active [get]
func (h *BargainHandler) FindActive(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product_id")
		return
	}
	view, err := h.q.FindActive(c.Request.Context(), userID, productID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.writeThread(c, http.StatusOK, view)
}

// @Summary List bargains
// @Description List the caller's threads as buyer or seller with keyset pagination
// @Tags bargains
// @Produce json
// @Security BearerAuth
// @Param as query string false "buyer or seller (default buyer)"
// @Param status query string false "pending, countered, accepted or rejected"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BargainListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bargains [get]
func (h *BargainHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	filter := queries.BargainListFilter{As: c.Query("as")}
	if s := c.Query("status"); s != "" {
		filter.Status = &s
	}
	items, next, err := h.q.ListForUser(c.Request.Context(), userID, filter, cursorFrom(c), limitFrom(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromBargainThreadList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Counter offer
// @Description Seller proposes a counter-offer
// @Tags bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body reqdto.OfferRequest true "Counter amount"
// @Success 200 {object} resdto.BargainThreadResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bargains/{id}/counter [post]
func (h *BargainHandler) Counter(c *gin.Context) {
	h.offer(c, h.cmds.Counter)
}

// @Summary Revise offer
// @Description Buyer replaces the current offer; any counter-offer is cleared
// @Tags bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body reqdto.OfferRequest true "Revised amount"
// @Success 200 {object} resdto.BargainThreadResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bargains/{id}/revise [post]
func (h *BargainHandler) Revise(c *gin.Context) {
	h.offer(c, h.cmds.Revise)
}

// @Summary Accept
// @Description Accept the other party's number and record the resolved price
// @Tags bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body reqdto.DecisionRequest true "Acting side"
// @Success 200 {object} resdto.BargainThreadResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bargains/{id}/accept [post]
func (h *BargainHandler) Accept(c *gin.Context) {
	h.decide(c, h.cmds.Accept)
}

// @Summary Reject
// @Description Reject the negotiation; the thread becomes terminal
// @Tags bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body reqdto.DecisionRequest true "Acting side"
// @Success 200 {object} resdto.BargainThreadResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bargains/{id}/reject [post]
func (h *BargainHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

// @Summary Post message
// @Description Append a chat message to a thread
// @Tags bargains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body reqdto.PostMessageRequest true "Message"
// @Success 201 {object} resdto.MessageCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bargains/{id}/messages [post]
func (h *BargainHandler) PostMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	var req reqdto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := withConflictRetry(c.Request.Context(), h.cfg.ConflictRetries, func(ctx context.Context) (*commands.MessageResult, error) {
		return h.cmds.PostMessage(ctx, id, userID, req.Text)
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessageResult(result))
}

type offerFunc func(ctx context.Context, threadID, userID uuid.UUID, amount int64) (*commands.BargainResult, error)

func (h *BargainHandler) offer(c *gin.Context, fn offerFunc) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := withConflictRetry(c.Request.Context(), h.cfg.ConflictRetries, func(ctx context.Context) (*commands.BargainResult, error) {
		return fn(ctx, id, userID, req.Amount)
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondThread(c, http.StatusOK, result.ThreadID)
}

type decisionFunc func(ctx context.Context, threadID uuid.UUID, actor bargain.Actor) (*commands.BargainResult, error)

func (h *BargainHandler) decide(c *gin.Context, fn decisionFunc) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	actor, err := req.ToActor(userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	result, err := withConflictRetry(c.Request.Context(), h.cfg.ConflictRetries, func(ctx context.Context) (*commands.BargainResult, error) {
		return fn(ctx, id, actor)
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondThread(c, http.StatusOK, result.ThreadID)
}

func (h *BargainHandler) respondThread(c *gin.Context, status int, id uuid.UUID) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.writeThread(c, status, view)
}

func (h *BargainHandler) writeThread(c *gin.Context, status int, view *queries.BargainThreadView) {
	resp, err := resdto.FromBargainThreadView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

func limitFrom(c *gin.Context) int {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	return limit
}

func cursorFrom(c *gin.Context) *queries.Cursor {
	if after := c.Query("after"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}
