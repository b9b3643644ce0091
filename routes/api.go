package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/property-search/app/controllers"
	"github.com/property-search/helpers/utils"
)

// SetupAPIRoutes thiết lập tất cả API routes.
func SetupAPIRoutes(router *gin.Engine, propertyController *controllers.PropertyController, facetController *controllers.FacetController) {
	// API v1 group
	v1 := router.Group("/v1")
	{
		properties := v1.Group("/properties")
		{
			properties.GET("/search", propertyController.Search)
			properties.GET("/duplicates", propertyController.Duplicates)
			properties.GET("/facets", facetController.Distinct)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/cache/invalidate", facetController.InvalidateCache)
			admin.GET("/cache/stats", facetController.CacheStats)
		}

		v1.GET("/health", propertyController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes.
func SetupHealthRoutes(router *gin.Engine, propertyController *controllers.PropertyController) {
	router.GET("/health", propertyController.HealthCheck)
	router.GET("/ready", propertyController.HealthCheck)
	router.GET("/live", propertyController.HealthCheck)
}

// SetupAllRoutes thiết lập tất cả routes.
func SetupAllRoutes(router *gin.Engine, propertyController *controllers.PropertyController, facetController *controllers.FacetController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, propertyController)
	SetupAPIRoutes(router, propertyController, facetController)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware thiết lập middleware cho router.
func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestID())
}

// requestID gắn request ID vào response header để trace.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateShortID()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
