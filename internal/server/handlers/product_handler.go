package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HarounMinhas/product-catalog/internal/repository"
	"github.com/HarounMinhas/product-catalog/internal/service/catalog"
)

// ProductHandler handles product listing HTTP requests.
type ProductHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewProductHandler constructs the HTTP handler adapter.
func NewProductHandler(svc *catalog.Service, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{svc: svc, logger: logger}
}

// List serves the product listing for the source named by the "source" query
// parameter. The database source is the default, matching a request without
// any parameter.
func (h *ProductHandler) List(c *gin.Context) {
	sourceType := c.DefaultQuery("source", catalog.SourceDatabase)

	products, err := h.svc.ListProducts(c.Request.Context(), sourceType)
	switch {
	case errors.Is(err, catalog.ErrUnsupportedSource):
		h.logger.Warn("unsupported source requested", zap.String("source", sourceType))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, repository.ErrSourceUnavailable):
		h.logger.Error("source unavailable", zap.String("source", sourceType), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	case err != nil:
		h.logger.Error("failed listing products", zap.String("source", sourceType), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"source":   sourceType,
		"products": products,
	})
}
