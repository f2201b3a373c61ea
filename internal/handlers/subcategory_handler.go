package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventcatalog/internal/helpers"
	"github.com/farellandr/eventcatalog/internal/service"
	"github.com/farellandr/eventcatalog/internal/validation"
)

type SubcategoryHandler struct {
	subcategories service.SubcategoryService
}

func NewSubcategoryHandler(subcategories service.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{subcategories: subcategories}
}

func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	var req validation.SubcategoryInput
	if err := helpers.ParseJSONBody(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	subcategory, err := h.subcategories.Create(c.Request.Context(), req)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) ListSubcategories(c *gin.Context) {
	subcategories, err := h.subcategories.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, subcategories)
}

func (h *SubcategoryHandler) ListSubcategoriesByCategory(c *gin.Context) {
	subcategories, err := h.subcategories.ListByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, subcategories)
}

func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.subcategories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subcategory deleted successfully.",
	})
}
