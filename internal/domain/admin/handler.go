package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/domain/booking"
	"bookingdesk/internal/pkg/response"
	"bookingdesk/internal/pkg/validator"
)

// Handler serves the admin booking routes. The admin gate runs before it.
type Handler struct {
	bookings *booking.Service
	query    *Query
}

func NewHandler(bookings *booking.Service, query *Query) *Handler {
	return &Handler{bookings: bookings, query: query}
}

// ListBookings godoc
// @Summary		List bookings
// @Description	All bookings joined with their users, optionally filtered by date and search text
// @Tags		Admin
// @Param		q		query	string	false	"search text"
// @Param		date	query	string	false	"YYYY-MM-DD"
// @Produce		json
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	rows, err := h.query.Run(c.Request.Context(), c.Query("date"), c.Query("q"))
	if err != nil {
		booking.WriteError(c, err, h.bookings.Policy())
		return
	}

	response.Success(c, http.StatusOK, "BOOKINGS_LISTED", gin.H{"data": rows})
}

// UpdateStatus godoc
// @Summary		Accept or reject a booking
// @Tags		Admin
// @Accept		json
// @Produce		json
// @Param		id		path	string						true	"booking id"
// @Param		body	body	booking.UpdateStatusRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/booking/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ReasonInvalidBody)
		return
	}

	b, err := h.bookings.AdminSetStatus(c.Request.Context(), c.Param("id"), req.Status, req.Note)
	if err != nil {
		booking.WriteError(c, err, h.bookings.Policy())
		return
	}

	response.Success(c, http.StatusOK, "BOOKING_UPDATED", gin.H{
		"status": b.Status,
		"note":   b.Note,
	})
}

// EditBooking godoc
// @Summary		Move a booking
// @Tags		Admin
// @Accept		json
// @Produce		json
// @Param		id		path	string						true	"booking id"
// @Param		body	body	booking.EditBookingRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/booking/{id} [put]
func (h *Handler) EditBooking(c *gin.Context) {
	var req booking.EditBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ReasonInvalidBody)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.Reject(c, http.StatusBadRequest, response.ReasonMissingFields)
		return
	}

	b, err := h.bookings.AdminEdit(c.Request.Context(), c.Param("id"), req.Date, req.Time, req.Service)
	if err != nil {
		booking.WriteError(c, err, h.bookings.Policy())
		return
	}

	response.Success(c, http.StatusOK, "BOOKING_EDITED", gin.H{"data": b})
}

// UpdateNote godoc
// @Summary		Replace the admin note
// @Tags		Admin
// @Accept		json
// @Produce		json
// @Param		id		path	string						true	"booking id"
// @Param		body	body	booking.UpdateNoteRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/booking/{id}/note [patch]
func (h *Handler) UpdateNote(c *gin.Context) {
	var req booking.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ReasonInvalidBody)
		return
	}

	b, err := h.bookings.AdminSetNote(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		booking.WriteError(c, err, h.bookings.Policy())
		return
	}

	response.Success(c, http.StatusOK, "NOTE_SAVED", gin.H{"note": b.Note})
}

// DeleteBooking godoc
// @Summary		Delete any booking
// @Description	Deleting an id that does not exist still succeeds
// @Tags		Admin
// @Produce		json
// @Param		id	path	string	true	"booking id"
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/booking/{id} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.bookings.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "BOOKING_DELETED_ADMIN", nil)
}
