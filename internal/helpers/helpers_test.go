package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondWithAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErrors bool
	}{
		{"validation", apperror.Validation("bad", apperror.FieldError{Field: "name", Message: "name is a required field"}), http.StatusBadRequest, true},
		{"conflict", apperror.Conflict("exists"), http.StatusConflict, false},
		{"not found", apperror.NotFound("missing"), http.StatusNotFound, false},
		{"store", apperror.Store("Failed to create event.", errors.New("pq: boom")), http.StatusInternalServerError, false},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext("")

			RespondWithAppError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.NotEmpty(t, body["message"])
			assert.Equal(t, http.StatusText(tt.wantStatus), body["error"])
			_, hasErrors := body["errors"]
			assert.Equal(t, tt.wantErrors, hasErrors)
			assert.NotContains(t, rec.Body.String(), "boom")
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		c, _ := newTestContext(`{"name":"Music"}`)
		var p payload
		require.NoError(t, ParseJSONBody(c, &p))
		assert.Equal(t, "Music", p.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		c, _ := newTestContext("")
		var p payload
		assert.NoError(t, ParseJSONBody(c, &p))
	})

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"name":`},
		{"wrong type", `{"name":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(tt.body)
			var p payload

			err := ParseJSONBody(c, &p)
			require.ErrorIs(t, err, apperror.ErrValidation)

			RespondWithAppError(c, err)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "body", body.Errors[0].Field)
			assert.NotContains(t, rec.Body.String(), "json:")
			assert.NotContains(t, rec.Body.String(), "unexpected EOF")
		})
	}
}
