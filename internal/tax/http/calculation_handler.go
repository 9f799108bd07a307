// Package http provides the HTTP handler for stateless tax calculations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/seikyu/internal/httputil"
	"github.com/allisson/seikyu/internal/tax/http/dto"
	taxService "github.com/allisson/seikyu/internal/tax/service"
	customValidation "github.com/allisson/seikyu/internal/validation"
)

// CalculationHandler prices items without persisting anything.
type CalculationHandler struct {
	logger *slog.Logger
}

// NewCalculationHandler creates a new calculation handler.
func NewCalculationHandler(logger *slog.Logger) *CalculationHandler {
	return &CalculationHandler{logger: logger}
}

// CalculateHandler computes the invoice totals for the posted items.
// POST /v1/calculations
func (h *CalculationHandler) CalculateHandler(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input := req.ToDomain()
	input.ApplyDefaults()
	if err := input.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	items := taxService.WithAmounts(input.Items)
	calc := taxService.Calculate(items, input.HasWithholding, input.TaxMethod)

	c.JSON(http.StatusOK, dto.MapCalculationToResponse(items, calc))
}

// RegisterRoutes mounts the calculation routes on router.
func (h *CalculationHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/calculations", h.CalculateHandler)
}
