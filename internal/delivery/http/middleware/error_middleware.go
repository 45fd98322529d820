package middleware

import (
	"errors"
	"net/http"

	"candidate-dashboard-backend/internal/delivery/http/response"
	"candidate-dashboard-backend/pkg/apperror"
	"candidate-dashboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors pushed onto the context by handlers and renders
// them as the contract's {"error": ...} bodies. Unknown errors become a
// generic 500 so storage faults never leak internals to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unhandled request error",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", c.GetString("RequestID"),
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
