package api

import (
	"context"
	"errors"
	"net/http"

	"bargain-market/internal/handler/httperr"
	"bargain-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("user not authenticated")

type errorMapping struct {
	kind    error
	status  int
	code    string
	message string
}

// Ordered: the first matching kind wins.
var errorMappings = []errorMapping{
	{errs.ErrInvalidOffer, http.StatusUnprocessableEntity, "INVALID_OFFER", "Invalid offer"},
	{errs.ErrInvalidPrice, http.StatusUnprocessableEntity, "INVALID_PRICE", "Invalid price"},
	{errs.ErrDuplicateActiveThread, http.StatusConflict, "DUPLICATE_ACTIVE_THREAD", "An active bargain already exists for this product"},
	{errs.ErrThreadClosed, http.StatusConflict, "THREAD_CLOSED", "Bargain thread is closed"},
	{errs.ErrNothingToAccept, http.StatusConflict, "NOTHING_TO_ACCEPT", "Nothing to accept"},
	{errs.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION", "Resource was modified concurrently"},
	{errs.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK", "Insufficient stock"},
	{errs.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION", "Invalid status transition"},
	{errs.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED", "Action not permitted"},
	{errs.ErrEmptyCart, http.StatusBadRequest, "EMPTY_CART", "Cart is empty"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Not found"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid request"},
}

var internalMapping = errorMapping{status: http.StatusInternalServerError, code: "INTERNAL", message: "Internal server error"}

func mappingFor(err error) errorMapping {
	for _, m := range errorMappings {
		if errs.Is(err, m.kind) {
			return m
		}
	}
	return internalMapping
}

// abortWithDomainError translates an error kind into its HTTP status.
func abortWithDomainError(c *gin.Context, err error) {
	m := mappingFor(err)
	var detail any
	if m.status != http.StatusInternalServerError {
		detail = gin.H{"reason": err.Error()}
	}
	httperr.AbortWithCode(c, m.status, err, m.code, m.message, detail)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, "VALIDATION_FAILED", msg, gin.H{"reason": err.Error()})
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithCode(c, http.StatusUnauthorized, errUnauthenticated, "UNAUTHENTICATED", "Unauthorized", nil)
}

// withConflictRetry re-runs fn while it fails with ConcurrentModification.
func withConflictRetry[T any](ctx context.Context, retries int, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		res T
		err error
	)
	for attempt := 0; attempt <= retries; attempt++ {
		res, err = fn(ctx)
		if err == nil || !errs.Is(err, errs.ErrConcurrentModification) {
			return res, err
		}
		if ctx.Err() != nil {
			return res, err
		}
	}
	return res, err
}
