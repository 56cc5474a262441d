// Package handler exposes the HTTP endpoints of the print service.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spalter/task-printer/internal/domain/task"
	"github.com/spalter/task-printer/internal/infrastructure/logger"
	"github.com/spalter/task-printer/internal/interfaces/http/dto"
)

// Printer runs one print job end to end.
type Printer interface {
	Print(ctx context.Context, raw task.RawRequest) error
}

// PrintHandler handles print job requests
type PrintHandler struct {
	printer Printer
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printer Printer) *PrintHandler {
	return &PrintHandler{printer: printer}
}

// RegisterRoutes registers print routes
func (h *PrintHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/print", h.Print)
}

// Print handles POST /print. The response contract is deliberately
// coarse: any failure, from a malformed body to an unreachable printer,
// answers 500 with the same fixed payload, and the detail stays in the
// log. Clients only need to know whether paper came out.
func (h *PrintHandler) Print(c *gin.Context) {
	log := logger.GetGinLogger(c)

	var req dto.PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Rejected malformed print request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.PrintFailed())
		return
	}

	if err := h.printer.Print(c.Request.Context(), req.ToRawRequest()); err != nil {
		log.Error("Print job failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.PrintFailed())
		return
	}

	c.JSON(http.StatusOK, dto.PrintSucceeded())
}
