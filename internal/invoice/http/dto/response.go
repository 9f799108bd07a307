package dto

import (
	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	taxService "github.com/allisson/seikyu/internal/tax/service"
)

// InvoiceResponse is the JSON representation of an invoice. FinalAmountFormatted is the
// yen display string, e.g. ¥29,631.
type InvoiceResponse struct {
	invoiceDomain.InvoiceRecord
	FinalAmountFormatted string `json:"finalAmountFormatted"`
}

// ListInvoicesResponse wraps a page of invoice summaries.
type ListInvoicesResponse struct {
	Data  []invoiceDomain.InvoiceSummary `json:"data"`
	Total int                            `json:"total"`
}

// NextNumberResponse previews the next invoice number.
type NextNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// MapInvoiceToResponse converts a domain invoice to its response.
func MapInvoiceToResponse(record *invoiceDomain.InvoiceRecord) InvoiceResponse {
	return InvoiceResponse{
		InvoiceRecord:        *record,
		FinalAmountFormatted: taxService.FormatCurrencyWithSymbol(record.Calculation.FinalAmount),
	}
}
