package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts handles GET /products. The catalog is owned by an external
// collaborator; this is a cached passthrough.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.catalogService.GetProducts(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
