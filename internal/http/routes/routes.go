package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pixel-color/internal/http/handlers"
	"github.com/phambaophuc/pixel-color/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	pixelHandler *handlers.PixelHandler
	logger       *zap.Logger
}

func NewRouter(
	pixelHandler *handlers.PixelHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		pixelHandler: pixelHandler,
		logger:       logger,
	}
}

// SetupRoutes mounts the pixel endpoint on every path and method that is not
// one of the API routes.
func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = false

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ErrorResponder(r.logger))

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.pixelHandler.HealthCheck)
		v1.GET("/stats", r.pixelHandler.GetStats)
	}

	router.NoRoute(r.pixelHandler.PixelColor)

	return router
}
