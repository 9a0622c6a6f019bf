package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bargain-market/internal/domain/user"
	"bargain-market/internal/handler/httperr"
	"bargain-market/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	bearerPrefix   = "Bearer "
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errForbiddenRole = errors.New("role not allowed")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, errMissingToken, "UNAUTHENTICATED", "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("rejected bearer token", "path", c.Request.URL.Path, "error", err.Error())
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "UNAUTHENTICATED", "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("role missing from context"), "Internal server error", nil)
			return
		}
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		httperr.AbortWithCode(c, http.StatusForbidden, errForbiddenRole, "UNAUTHORIZED", "Insufficient permissions", nil)
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
