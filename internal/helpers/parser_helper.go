package helpers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

// ParseJSONBody decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports each missing field.
func ParseJSONBody(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.Validation("Invalid JSON body.", apperror.FieldError{
			Field:   "body",
			Message: "body must be a JSON object with correctly typed fields",
		})
	}
	return nil
}
