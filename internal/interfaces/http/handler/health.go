package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spalter/task-printer/internal/interfaces/http/dto"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// RegisterRoutes registers health routes. The root path doubles as a
// health endpoint so a bare GET to the service answers something useful.
func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Health)
	router.GET("/health", h.Health)
}

// Health handles GET / and GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: "taskprinter",
		Version: h.version,
	})
}
