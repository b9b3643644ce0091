package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/property-search/app/requests"
	"github.com/property-search/app/responses"
	"github.com/property-search/app/services"
	"github.com/property-search/internal/store"
)

// FacetController xử lý các request facet values cho UI filters.
type FacetController struct {
	facetService *services.FacetService
	logger       *zap.Logger
}

// NewFacetController tạo mới FacetController.
func NewFacetController(facetService *services.FacetService, logger *zap.Logger) *FacetController {
	return &FacetController{
		facetService: facetService,
		logger:       logger,
	}
}

// Distinct GET /v1/properties/facets
func (fc *FacetController) Distinct(c *gin.Context) {
	var params requests.FacetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "field must be one of city, agent, broker, province, postal",
		})
		return
	}

	result, err := fc.facetService.Distinct(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrUnknownField) {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:   "INVALID_FIELD",
				Message: err.Error(),
			})
			return
		}
		fc.logger.Error("Facet request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STORE_ERROR",
			Message: "Facet query failed: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// InvalidateCache POST /v1/admin/cache/invalidate
func (fc *FacetController) InvalidateCache(c *gin.Context) {
	if err := fc.facetService.InvalidateAll(c.Request.Context()); err != nil {
		fc.logger.Error("Cache invalidation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: "Invalidate cache failed: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CacheStats GET /v1/admin/cache/stats
func (fc *FacetController) CacheStats(c *gin.Context) {
	stats, err := fc.facetService.CacheStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: "Get cache stats failed: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}
