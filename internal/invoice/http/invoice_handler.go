// Package http provides HTTP handlers for issuing and browsing invoices.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/seikyu/internal/httputil"
	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	"github.com/allisson/seikyu/internal/invoice/http/dto"
	invoiceUseCase "github.com/allisson/seikyu/internal/invoice/usecase"
)

// InvoiceHandler handles HTTP requests for invoice operations.
type InvoiceHandler struct {
	invoiceUseCase invoiceUseCase.InvoiceUseCase
	logger         *slog.Logger
}

// NewInvoiceHandler creates a new invoice handler with required dependencies.
func NewInvoiceHandler(invoiceUseCase invoiceUseCase.InvoiceUseCase, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUseCase: invoiceUseCase,
		logger:         logger,
	}
}

// CreateHandler issues an invoice.
// POST /v1/invoices - Returns 201 Created.
func (h *InvoiceHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	record, err := h.invoiceUseCase.CreateForProfile(c.Request.Context(), req.ProfileID, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapInvoiceToResponse(record))
}

// ListHandler lists invoice summaries with optional filters and pagination.
// GET /v1/invoices?clientName=&dateFrom=&dateTo=&offset=0&limit=50
func (h *InvoiceHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter := invoiceDomain.InvoiceFilter{
		ClientName: c.Query("clientName"),
		DateFrom:   c.Query("dateFrom"),
		DateTo:     c.Query("dateTo"),
	}

	summaries, err := h.invoiceUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Data:  httputil.Paginate(summaries, offset, limit),
		Total: len(summaries),
	})
}

// GetHandler retrieves an invoice by id.
// GET /v1/invoices/:id
func (h *InvoiceHandler) GetHandler(c *gin.Context) {
	record, err := h.invoiceUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapInvoiceToResponse(record))
}

// DeleteHandler deletes an invoice.
// DELETE /v1/invoices/:id - Returns 204 No Content.
func (h *InvoiceHandler) DeleteHandler(c *gin.Context) {
	if err := h.invoiceUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// NextNumberHandler previews the number the next invoice will receive.
// GET /v1/invoices/next-number
func (h *InvoiceHandler) NextNumberHandler(c *gin.Context) {
	number, err := h.invoiceUseCase.NextNumber(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.NextNumberResponse{InvoiceNumber: number})
}

// RegisterRoutes mounts the invoice routes on router.
func (h *InvoiceHandler) RegisterRoutes(router gin.IRouter) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("", h.ListHandler)
		invoices.POST("", h.CreateHandler)
		invoices.GET("/next-number", h.NextNumberHandler)
		invoices.GET("/:id", h.GetHandler)
		invoices.DELETE("/:id", h.DeleteHandler)
	}
}
