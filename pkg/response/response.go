package response

import (
	"errors"
	"net/http"
	"time"

	"taxhub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the stable error envelope returned by every endpoint.
// No stack trace or internal detail ever leaks through it.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Status:    appErr.HTTPStatus,
			Error:     http.StatusText(appErr.HTTPStatus),
			Message:   appErr.Message,
			Path:      c.Request.URL.Path,
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    http.StatusInternalServerError,
		Error:     http.StatusText(http.StatusInternalServerError),
		Message:   "Internal server error",
		Path:      c.Request.URL.Path,
	})
}
