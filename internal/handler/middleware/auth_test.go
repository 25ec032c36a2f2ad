//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"staymarket/internal/handler/middleware"
	"staymarket/internal/pkg/jwt"
	"staymarket/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := jwt.NewService("test-secret")
	auth := middleware.NewAuthMiddleware(tokens)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	protected := router.Group("/", auth.RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		actorID, _ := middleware.GetActorID(c)
		role, _ := middleware.GetActorRole(c)
		c.JSON(http.StatusOK, gin.H{"actorId": actorID, "role": role})
	})
	protected.GET("/host-only", auth.RequireRoleAtLeast(middleware.RoleHost), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	protected.GET("/admin-only", auth.RequireRoleAtLeast(middleware.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, tokens
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newAuthRouter(t)
	actorID := uuid.New()

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := tokens.GenerateToken(actorID, middleware.RoleGuest, time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), actorID.String())
		assert.Contains(t, rec.Body.String(), middleware.RoleGuest)
	})

	t.Run("missing token: 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("garbage token: 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token: 401", func(t *testing.T) {
		token, err := tokens.GenerateToken(actorID, middleware.RoleGuest, -time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret: 401", func(t *testing.T) {
		other := jwt.NewService("other-secret")
		token, err := other.GenerateToken(actorID, middleware.RoleGuest, time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	router, tokens := newAuthRouter(t)
	actorID := uuid.New()

	cases := []struct {
		role       string
		path       string
		expectCode int
	}{
		{middleware.RoleGuest, "/host-only", http.StatusForbidden},
		{middleware.RoleHost, "/host-only", http.StatusNoContent},
		{middleware.RoleAdmin, "/host-only", http.StatusNoContent},
		{middleware.RoleHost, "/admin-only", http.StatusForbidden},
		{middleware.RoleAdmin, "/admin-only", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.role+" "+tc.path, func(t *testing.T) {
			token, err := tokens.GenerateToken(actorID, tc.role, time.Hour)
			require.NoError(t, err)

			rec := httptest.PerformRequest(t, router, http.MethodGet, tc.path, nil, token)
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}

	t.Run("unknown role is rejected", func(t *testing.T) {
		token, err := tokens.GenerateToken(actorID, "superuser", time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/host-only", nil, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
