package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/domain/auth"
	"bookingdesk/internal/pkg/response"
)

const ContextAdminID = "admin_id"

// AdminGate resolves an id to an admin account.
type AdminGate interface {
	Authorize(ctx context.Context, adminID string) (*auth.User, error)
}

// RequireAdmin runs the admin gate before every admin route. The id is the
// token principal, or ?adminId= when client ids are allowed.
func RequireAdmin(gate AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := CallerID(c, c.Query("adminId"))

		admin, err := gate.Authorize(c.Request.Context(), adminID)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				response.AbortWithError(c, http.StatusUnauthorized, response.ReasonUnauthenticated, "UNAUTHENTICATED")
			case errors.Is(err, auth.ErrForbidden):
				response.AbortWithError(c, http.StatusForbidden, response.ReasonForbidden, "ADMIN_ONLY")
			default:
				_ = c.Error(err)
				response.AbortWithError(c, http.StatusInternalServerError, response.ReasonServerError, response.ReasonServerError)
			}
			return
		}

		c.Set(ContextAdminID, admin.ID)
		c.Next()
	}
}
