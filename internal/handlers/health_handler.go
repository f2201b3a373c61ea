package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventcatalog/internal/helpers"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "Database unreachable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
