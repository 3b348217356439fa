package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the user-facing booking routes. rg is expected to
// carry the identity middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/book", h.CreateBooking)
	rg.GET("/my-bookings", h.GetMyBookings)
	rg.GET("/my-bookings/:userId", h.GetMyBookings)
	rg.DELETE("/booking/:id", h.CancelBooking)
}
