package handlers

import (
	"net/http"

	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the product listing screen.
type CatalogHandler struct {
	catalog usecase.ICatalogStore
}

func NewCatalogHandler(catalog usecase.ICatalogStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts godoc
// @Summary List catalog products
// @Tags catalog
// @Produce json
// @Success 200 {object} response.CatalogResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalogSnapshot(h.catalog.Snapshot()))
}

// ReloadProducts godoc
// @Summary Re-fetch the catalog in the background
// @Tags catalog
// @Produce json
// @Success 202 {object} response.CatalogResponse
// @Router /products/reload [post]
func (h *CatalogHandler) ReloadProducts(c *gin.Context) {
	h.catalog.Reload()
	c.JSON(http.StatusAccepted, response.FromCatalogSnapshot(h.catalog.Snapshot()))
}
