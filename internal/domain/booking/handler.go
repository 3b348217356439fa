package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/middleware"
	"bookingdesk/internal/pkg/response"
	"bookingdesk/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking reserves a slot for the caller.
// @Summary		Book an appointment
// @Tags		Bookings
// @Accept		json
// @Produce		json
// @Param		body	body	CreateBookingRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/book [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ReasonInvalidBody)
		return
	}

	userID := middleware.CallerID(c, req.UserID)
	if userID == "" || validator.Validate(req) != nil {
		response.Reject(c, http.StatusBadRequest, response.ReasonMissingFields)
		return
	}

	b, err := h.service.Create(c.Request.Context(), Proposal{
		UserID:  userID,
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
	})
	if err != nil {
		WriteError(c, err, h.service.Policy())
		return
	}

	response.Success(c, http.StatusOK, "BOOKED", gin.H{"data": b})
}

// GetMyBookings lists the caller's bookings by date and time.
// @Summary		My bookings
// @Tags		Bookings
// @Produce		json
// @Success		200	{object}	map[string]interface{}
// @Router		/my-bookings/{userId} [get]
func (h *Handler) GetMyBookings(c *gin.Context) {
	asserted := c.Param("userId")
	userID := middleware.CallerID(c, asserted)
	if userID == "" {
		response.Reject(c, http.StatusBadRequest, response.ReasonMissingFields)
		return
	}
	if asserted != "" && asserted != userID {
		response.Reject(c, http.StatusForbidden, response.ReasonForbidden)
		return
	}

	rows, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "BOOKINGS_LISTED", gin.H{"data": rows})
}

// CancelBooking deletes one of the caller's bookings.
// @Summary		Cancel my booking
// @Tags		Bookings
// @Produce		json
// @Param		id	path	string	true	"booking id"
// @Success		200	{object}	map[string]interface{}
// @Router		/booking/{id} [delete]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID := middleware.CallerID(c, c.Query("userId"))

	if err := h.service.CancelByOwner(c.Request.Context(), c.Param("id"), userID); err != nil {
		WriteError(c, err, h.service.Policy())
		return
	}

	response.Success(c, http.StatusOK, "BOOKING_DELETED", nil)
}

// WriteError maps booking errors to rejections. Anything unknown is a 500.
func WriteError(c *gin.Context, err error, policy Policy) {
	switch {
	case errors.Is(err, ErrMissingFields):
		response.Reject(c, http.StatusBadRequest, response.ReasonMissingFields)
	case errors.Is(err, ErrUnknownUser):
		response.Reject(c, http.StatusNotFound, response.ReasonUnknownUser)
	case errors.Is(err, ErrInvalidDate):
		response.Reject(c, http.StatusBadRequest, response.ReasonInvalidDate)
	case errors.Is(err, ErrInvalidTime):
		response.Reject(c, http.StatusBadRequest, response.ReasonInvalidTime)
	case errors.Is(err, ErrWeekendNotAllowed):
		response.Reject(c, http.StatusBadRequest, response.ReasonWeekendNotAllowed)
	case errors.Is(err, ErrOutsideWorkingHours):
		response.Reject(c, http.StatusBadRequest, response.ReasonOutsideWorkingHours, map[string]any{
			"Open":  policy.Open.String(),
			"Close": policy.Close.String(),
		})
	case errors.Is(err, ErrSlotConflict):
		response.Reject(c, http.StatusConflict, response.ReasonSlotConflict)
	case errors.Is(err, ErrInvalidStatus):
		response.Reject(c, http.StatusBadRequest, response.ReasonInvalidStatus)
	case errors.Is(err, ErrNotFound):
		response.Reject(c, http.StatusNotFound, response.ReasonNotFound)
	case errors.Is(err, ErrForbidden):
		response.Reject(c, http.StatusForbidden, response.ReasonForbidden)
	default:
		response.ServerError(c, err)
	}
}
