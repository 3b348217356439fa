package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookingdesk/internal/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoAmI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"caller": CallerID(c, c.Query("userId")),
		"role":   c.GetString(ContextRole),
	})
}

func newAuthRouter(jwtService *jwt.Service, allowClientIDs bool) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(jwtService, allowClientIDs))
	router.GET("/open", whoAmI)
	router.GET("/protected", RequireIdentity(), whoAmI)
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	validToken, _ := jwtService.GenerateToken("user-42", "user")

	router := newAuthRouter(jwtService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?userId=someone-else", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"caller":"user-42"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := newAuthRouter(jwt.New("secret", time.Hour), true)

	router.GET("/never", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/never", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
}

func TestJWTAuth_WrongFormat(t *testing.T) {
	router := newAuthRouter(jwt.New("secret", time.Hour), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestRequireIdentity_NoToken(t *testing.T) {
	router := newAuthRouter(jwt.New("secret", time.Hour), false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?userId=u1", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
}

func TestCallerID_ClientIDsAllowed(t *testing.T) {
	router := newAuthRouter(jwt.New("secret", time.Hour), true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?userId=u1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"caller":"u1"`)
}

func TestCallerID_ClientIDsIgnoredByDefault(t *testing.T) {
	router := newAuthRouter(jwt.New("secret", time.Hour), false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open?userId=u1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"caller":""`)
}
