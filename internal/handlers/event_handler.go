package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventcatalog/internal/helpers"
	"github.com/farellandr/eventcatalog/internal/service"
	"github.com/farellandr/eventcatalog/internal/validation"
)

type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req validation.EventInput
	if err := helpers.ParseJSONBody(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	event, err := h.events.Create(c.Request.Context(), req)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) FilterEvents(c *gin.Context) {
	events, err := h.events.Filter(c.Request.Context(), c.Query("categoryId"), c.Query("subcategoryId"))
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req validation.EventInput
	if err := helpers.ParseJSONBody(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	event, err := h.events.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
