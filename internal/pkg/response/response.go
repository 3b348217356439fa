package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/locale"
)

const strictKey = "strict_status"

// Reason codes returned in the "reason" field of rejected requests.
const (
	ReasonMissingFields       = "MISSING_FIELDS"
	ReasonUnknownUser         = "UNKNOWN_USER"
	ReasonInvalidDate         = "INVALID_DATE"
	ReasonInvalidTime         = "INVALID_TIME"
	ReasonWeekendNotAllowed   = "WEEKEND_NOT_ALLOWED"
	ReasonOutsideWorkingHours = "OUTSIDE_WORKING_HOURS"
	ReasonSlotConflict        = "SLOT_CONFLICT"
	ReasonInvalidStatus       = "INVALID_STATUS"
	ReasonNotFound            = "NOT_FOUND"
	ReasonForbidden           = "FORBIDDEN"
	ReasonUnauthenticated     = "UNAUTHENTICATED"
	ReasonEmailExists         = "EMAIL_EXISTS"
	ReasonUserNotFound        = "USER_NOT_FOUND"
	ReasonWrongPassword       = "WRONG_PASSWORD"
	ReasonInvalidBody         = "INVALID_BODY"
	ReasonServerError         = "SERVER_ERROR"
)

// StatusMode records whether business rejections use 4xx codes (strict) or
// a 200 soft failure.
func StatusMode(strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(strictKey, strict)
		c.Next()
	}
}

// Success writes {"ok": true, "message": ..., extra fields...}.
func Success(c *gin.Context, statusCode int, messageID string, extra gin.H) {
	body := gin.H{
		"ok":      true,
		"message": locale.T(c, messageID),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Reject writes a business rejection. strictStatus is used only when the
// request runs in strict mode; otherwise the response is a 200.
func Reject(c *gin.Context, strictStatus int, reason string, data ...map[string]any) {
	status := http.StatusOK
	if c.GetBool(strictKey) {
		status = strictStatus
	}
	c.JSON(status, rejection(c, reason, reason, data...))
}

// Error writes a failure with a fixed HTTP status regardless of mode.
func Error(c *gin.Context, statusCode int, reason string) {
	c.JSON(statusCode, rejection(c, reason, reason))
}

// AbortWithError is Error for middleware.
func AbortWithError(c *gin.Context, statusCode int, reason, messageID string) {
	c.AbortWithStatusJSON(statusCode, rejection(c, reason, messageID))
}

// ServerError hides err from the client and records it for ErrorLogger.
func ServerError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusInternalServerError, rejection(c, ReasonServerError, ReasonServerError))
}

func rejection(c *gin.Context, reason, messageID string, data ...map[string]any) gin.H {
	return gin.H{
		"ok":      false,
		"reason":  reason,
		"message": locale.T(c, messageID, data...),
	}
}
