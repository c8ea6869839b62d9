package helpers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fzambone/event-attendance/internal/apperr"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithAppError maps a typed error onto its HTTP status. Internal
// causes are logged for operators and replaced by a generic message.
func RespondWithAppError(c *gin.Context, err error) {
	appErr, ok := err.(*apperr.Error)
	if !ok {
		appErr = apperr.Wrap(apperr.Internal, "Internal server error.", err)
	}

	switch appErr.Kind {
	case apperr.InvalidInput:
		RespondWithError(c, http.StatusBadRequest, appErr.Message)
	case apperr.NotFound:
		RespondWithError(c, http.StatusNotFound, appErr.Message)
	case apperr.Conflict:
		RespondWithError(c, http.StatusConflict, appErr.Message)
	case apperr.Unauthorized:
		RespondWithError(c, http.StatusUnauthorized, appErr.Message)
	default:
		requestID, _ := c.Get("request_id")
		slog.Error("internal error",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", appErr.Error(),
		)
		RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}
