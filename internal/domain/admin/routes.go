package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the admin routes on a group already guarded by
// middleware.RequireAdmin.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/bookings", h.ListBookings)
	admin.PUT("/booking/:id/status", h.UpdateStatus)
	admin.PUT("/booking/:id", h.EditBooking)
	admin.PATCH("/booking/:id/note", h.UpdateNote)
	admin.DELETE("/booking/:id", h.DeleteBooking)
}
