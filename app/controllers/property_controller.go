package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/property-search/app/requests"
	"github.com/property-search/app/responses"
	"github.com/property-search/app/services"
	"github.com/property-search/internal/dedup"
	"github.com/property-search/internal/query"
	"github.com/property-search/internal/view"
)

// PropertyController xử lý các request search và duplicate detection.
type PropertyController struct {
	propertyService *services.PropertyService
	logger          *zap.Logger
}

// NewPropertyController tạo mới PropertyController.
func NewPropertyController(propertyService *services.PropertyService, logger *zap.Logger) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
		logger:          logger,
	}
}

// Search GET /v1/properties/search
func (pc *PropertyController) Search(c *gin.Context) {
	var params requests.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Invalid query parameters: " + err.Error(),
		})
		return
	}

	payload, err := pc.propertyService.Search(c.Request.Context(), params)
	if err != nil {
		pc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// Duplicates GET /v1/properties/duplicates
func (pc *PropertyController) Duplicates(c *gin.Context) {
	var params requests.DuplicateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Invalid query parameters: " + err.Error(),
		})
		return
	}

	result, err := pc.propertyService.Duplicates(c.Request.Context(), params)
	if err != nil {
		pc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HealthCheck kiểm tra sức khỏe service.
func (pc *PropertyController) HealthCheck(c *gin.Context) {
	uptime := time.Since(pc.propertyService.GetStartTime())

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"search":   "healthy",
			"database": "healthy",
		},
	})
}

// respondError map lỗi domain sang HTTP status. Client errors (bad
// filter, mode, format) là 400; còn lại là store/server error 500.
func (pc *PropertyController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrBadFilter):
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_FILTER",
			Message: err.Error(),
		})
	case errors.Is(err, dedup.ErrUnknownMode):
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_MODE",
			Message: err.Error(),
		})
	case errors.Is(err, view.ErrUnknownView):
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_FORMAT",
			Message: err.Error(),
		})
	default:
		pc.logger.Error("Property request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STORE_ERROR",
			Message: "Query failed: " + err.Error(),
		})
	}
}
