//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"bargain-market/internal/domain/user"
	"bargain-market/internal/handler/httperr"
	"bargain-market/internal/handler/middleware"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/pkg/jwt"
	"bargain-market/internal/usecase"
	"bargain-market/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	jwt    *jwt.Service
	router *gin.Engine
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwt = jwt.NewService("middleware-test-secret", time.Hour)

	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeFormat: time.RFC3339})
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt))

	s.router = gin.New()
	s.router.Use(logger.LoggingMiddleware(), middleware.CustomRecovery(), middleware.ErrorHandler())

	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	}
	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	s.router.GET("/panic", func(*gin.Context) { panic("boom") })
	s.router.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errors.New("db exploded"))
	})
	s.router.GET("/public-error", func(c *gin.Context) {
		httperr.AbortWithCode(c, http.StatusTeapot, errors.New("kettle"), "TEAPOT", "I'm a teapot", nil)
	})
}

func (s *MiddlewareTestSuite) token(role user.Role) (uuid.UUID, string) {
	id := uuid.New()
	token, err := s.jwt.GenerateToken(id, role)
	s.Require().NoError(err)
	return id, token
}

func (s *MiddlewareTestSuite) TestRequireAuth() {
	s.Run("Normal case: identity from the token reaches the handler", func() {
		id, token := s.token(user.RoleBuyer)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id.String(), resp["user_id"])
		s.Equal("buyer", resp["role"])
	})

	s.Run("Abnormal case: missing token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")

		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "UNAUTHENTICATED")
	})

	s.Run("Abnormal case: token signed with another secret", func() {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New(), user.RoleBuyer)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("Abnormal case: expired token", func() {
		token, err := jwt.NewService("middleware-test-secret", -time.Minute).GenerateToken(uuid.New(), user.RoleBuyer)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "UNAUTHENTICATED")
	})
}

func (s *MiddlewareTestSuite) TestRequireRole() {
	s.Run("Normal case: admin passes", func() {
		_, token := s.token(user.RoleAdmin)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, token)

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("Abnormal case: seller is refused", func() {
		_, token := s.token(user.RoleSeller)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, token)

		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, "UNAUTHORIZED")
	})
}

func (s *MiddlewareTestSuite) TestErrorRendering() {
	s.Run("panic is answered with a generic 500", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/panic", nil, "")

		httptest.AssertErrorCode(s.T(), w, http.StatusInternalServerError, "INTERNAL")
		s.NotContains(w.Body.String(), "boom")
	})

	s.Run("private error does not leak", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private-error", nil, "")

		httptest.AssertErrorCode(s.T(), w, http.StatusInternalServerError, "INTERNAL")
		s.NotContains(w.Body.String(), "db exploded")
	})

	s.Run("public error keeps its status and code", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public-error", nil, "")

		httptest.AssertErrorCode(s.T(), w, http.StatusTeapot, "TEAPOT")
	})
}

func (s *MiddlewareTestSuite) TestRequestID() {
	s.Run("minted when absent", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")

		httptest.AssertGeneratedRequestID(s.T(), w)
	})

	s.Run("client value is echoed", func() {
		req := nethttptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(httptest.RequestIDHeader, "client-abc")
		w := nethttptest.NewRecorder()

		s.router.ServeHTTP(w, req)

		s.Equal("client-abc", w.Header().Get(httptest.RequestIDHeader))
	})

	s.Run("oversized value is replaced", func() {
		req := nethttptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(httptest.RequestIDHeader, strings.Repeat("x", 100))
		w := nethttptest.NewRecorder()

		s.router.ServeHTTP(w, req)

		httptest.AssertGeneratedRequestID(s.T(), w)
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	tests := []struct {
		name            string
		origins         []string
		origin          string
		wantAllowOrigin string
		wantCredentials string
	}{
		{"listed origin", []string{"http://shop.example"}, "http://shop.example", "http://shop.example", "true"},
		{"unlisted origin", []string{"http://shop.example"}, "http://evil.example", "", ""},
		{"wildcard drops credentials", []string{"*"}, "http://any.example", "*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.AllowOrigins = tt.origins
			r := gin.New()
			r.Use(middleware.NewCORSMiddleware(cfg))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := nethttptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.NotEqual(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantAllowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
