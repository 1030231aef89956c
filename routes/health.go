package routes

import (
	"net/http"

	"github.com/Polceze/taskman/config"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes exposes the static service metadata and liveness probe.
func RegisterHealthRoutes(router *gin.Engine, cfg config.Config) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.AppName,
			"version": cfg.AppVersion,
			"status":  "healthy",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
