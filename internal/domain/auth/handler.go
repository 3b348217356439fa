package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/pkg/response"
	"bookingdesk/internal/pkg/validator"
)

// Handler manages registration and login.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register creates a user account.
// @Summary		Register
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	RegisterRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ReasonInvalidBody)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.Reject(c, http.StatusBadRequest, response.ReasonMissingFields)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Reject(c, http.StatusBadRequest, response.ReasonMissingFields)
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Reject(c, http.StatusConflict, response.ReasonEmailExists)
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, "REGISTERED", gin.H{"userId": u.ID})
}

// Login checks credentials and returns the user id, role and a bearer token.
// @Summary		Login
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	LoginRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ReasonInvalidBody)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Reject(c, http.StatusUnauthorized, response.ReasonUserNotFound)
		case errors.Is(err, ErrWrongPassword):
			response.Reject(c, http.StatusUnauthorized, response.ReasonWrongPassword)
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, "LOGGED_IN", gin.H{
		"userId": res.User.ID,
		"role":   res.User.Role,
		"name":   res.User.Name,
		"token":  res.Token,
	})
}
