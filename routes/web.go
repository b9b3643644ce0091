package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupWebRoutes thiết lập web routes (root + status).
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Property Search Service",
			"version": "1.0.0",
			"endpoints": []string{
				"/v1/properties/search",
				"/v1/properties/duplicates",
				"/v1/properties/facets",
				"/health",
			},
		})
	})

	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "running",
		})
	})
}
