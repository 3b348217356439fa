package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/pkg/jwt"
	"bookingdesk/internal/pkg/response"
)

const (
	ContextUserID         = "user_id"
	ContextRole           = "role"
	ContextAllowClientIDs = "allow_client_ids"
)

// JWTAuth reads an optional bearer token and records the principal in the
// gin context. A malformed or invalid token is rejected; a missing one is
// not, so that RequireIdentity and RequireAdmin can decide.
func JWTAuth(jwtService *jwt.Service, allowClientIDs bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextAllowClientIDs, allowClientIDs)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			response.AbortWithError(c, http.StatusUnauthorized, response.ReasonUnauthenticated, "UNAUTHENTICATED")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, response.ReasonUnauthenticated, "UNAUTHENTICATED")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// CallerID returns the verified principal id. Without a token it falls back
// to the client-asserted id, but only when client ids are allowed.
func CallerID(c *gin.Context, asserted string) string {
	if id := c.GetString(ContextUserID); id != "" {
		return id
	}
	if c.GetBool(ContextAllowClientIDs) {
		return strings.TrimSpace(asserted)
	}
	return ""
}

// RequireIdentity rejects anonymous requests unless client ids are allowed.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" && !c.GetBool(ContextAllowClientIDs) {
			response.AbortWithError(c, http.StatusUnauthorized, response.ReasonUnauthenticated, "UNAUTHENTICATED")
			return
		}
		c.Next()
	}
}
