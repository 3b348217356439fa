package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookingdesk/internal/domain/auth"
	"bookingdesk/internal/pkg/jwt"
)

type gateFunc func(ctx context.Context, adminID string) (*auth.User, error)

func (f gateFunc) Authorize(ctx context.Context, adminID string) (*auth.User, error) {
	return f(ctx, adminID)
}

var testGate = gateFunc(func(_ context.Context, adminID string) (*auth.User, error) {
	switch adminID {
	case "":
		return nil, auth.ErrUnauthenticated
	case "admin-1":
		return &auth.User{ID: adminID, Role: auth.RoleAdmin}, nil
	case "user-1":
		return nil, auth.ErrForbidden
	case "broken":
		return nil, errors.New("db down")
	default:
		return nil, auth.ErrUnauthenticated
	}
})

func newAdminRouter(jwtService *jwt.Service, allowClientIDs bool) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(jwtService, allowClientIDs))
	router.GET("/admin", RequireAdmin(testGate), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString(ContextAdminID)})
	})
	return router
}

func TestRequireAdmin_ClientIDs(t *testing.T) {
	router := newAdminRouter(jwt.New("secret", time.Hour), true)

	tests := []struct {
		query string
		code  int
		body  string
	}{
		{"", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"?adminId=ghost", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"?adminId=user-1", http.StatusForbidden, "FORBIDDEN"},
		{"?adminId=broken", http.StatusInternalServerError, "SERVER_ERROR"},
		{"?adminId=admin-1", http.StatusOK, `"admin":"admin-1"`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin"+tt.query, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRequireAdmin_TokenWinsOverQuery(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	router := newAdminRouter(jwtService, true)
	token, _ := jwtService.GenerateToken("user-1", "user")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin?adminId=admin-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_QueryIgnoredWithoutClientIDs(t *testing.T) {
	router := newAdminRouter(jwt.New("secret", time.Hour), false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?adminId=admin-1", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
