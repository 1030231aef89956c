package routes

import (
	"github.com/Polceze/taskman/config"
	"github.com/Polceze/taskman/database"
	"github.com/Polceze/taskman/middleware"
	"github.com/Polceze/taskman/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine with CORS, the health endpoints and the task
// API mounted under /api.
func SetupRouter(cfg config.Config, db *database.Database, taskService services.TaskServiceInterface) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Origins()))

	RegisterHealthRoutes(router, cfg)

	apiGroup := router.Group("/api")
	RegisterTaskRoutes(apiGroup, db, taskService)

	return router
}
