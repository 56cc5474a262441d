// Package router assembles the gin engine: global middleware first,
// then every handler registers its own routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spalter/task-printer/internal/infrastructure/logger"
	"github.com/spalter/task-printer/internal/interfaces/http/middleware"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// Setup creates the gin engine with global middleware and registers all
// routes at the root path.
func Setup(env string, log *zap.Logger, registrars ...RouteRegistrar) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.RegisterValidation()

	engine := gin.New()

	// Order matters: the request ID must exist before the logger reads it
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	for _, r := range registrars {
		r.RegisterRoutes(engine)
	}

	return engine
}
