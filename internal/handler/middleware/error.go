package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"bargain-market/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const codeInternal = "INTERNAL"

var internalError = httperr.Response{
	Status: http.StatusInternalServerError,
	Error:  httperr.Body{Code: codeInternal, Message: "Internal server error"},
}

// ErrorHandler renders the newest public error when a handler recorded one
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) > 0 {
			slog.ErrorContext(c.Request.Context(), "unrendered handler error",
				"path", c.FullPath(), "error", c.Errors.Last().Error())
			c.JSON(http.StatusInternalServerError, internalError)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
			}
		}()
		c.Next()
	}
}
