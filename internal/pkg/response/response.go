package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit/internal/domain"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Status maps a domain error onto an HTTP status and error code.
// With exposeForbidden=false a forbidden action looks exactly like a missing record.
func Status(err error, exposeForbidden bool) (int, string) {
	switch {
	case exposeForbidden && errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrNotAvailable):
		return http.StatusBadRequest, "NOT_AVAILABLE"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, domain.ErrNotSupportedStatus):
		return http.StatusBadRequest, "UNSUPPORTED_STATUS"
	case errors.Is(err, domain.ErrNotSaved):
		return http.StatusConflict, "NOT_SAVED"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// FromError writes the error envelope for err. Internal errors are attached to
// the gin context for the logger middleware and never leak their message.
func FromError(c *gin.Context, err error, exposeForbidden bool) {
	status, code := Status(err, exposeForbidden)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "Internal server error"
	}
	Error(c, status, code, msg)
}
