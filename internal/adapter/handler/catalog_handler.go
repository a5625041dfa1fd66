package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
)

type CatalogHandler struct {
	catalog ports.Catalog
}

func NewCatalogHandler(catalog ports.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/v1/catalog/cities
func (h *CatalogHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.catalog.Cities()})
}

// GET /api/v1/catalog/bus-types
func (h *CatalogHandler) BusTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bus_types": h.catalog.BusTypes()})
}
