package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

type ErrorResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithAppError writes err using its kind's status code. The error is
// also attached to the gin context so the request logger records the cause.
func RespondWithAppError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	statusCode := appErr.Kind.HTTPStatus()
	resp := ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: appErr.Message,
	}
	if appErr.Kind == apperror.KindValidation {
		resp.Errors = appErr.Fields
	}
	c.JSON(statusCode, resp)
}
