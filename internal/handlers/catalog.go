package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podarunok-backend/internal/catalog"
	"podarunok-backend/internal/models"
)

type CatalogHandler struct {
	loader *catalog.Loader
}

func NewCatalogHandler(loader *catalog.Loader) *CatalogHandler {
	return &CatalogHandler{loader: loader}
}

// List returns the categories and active products with their formats.
// Store failures have already degraded to empty results inside the loader.
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.CatalogResponse{
		Categories: h.loader.Categories(),
		Products:   h.loader.ActiveProducts(),
	})
}
