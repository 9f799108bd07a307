// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
)

// CreateInvoiceRequest contains the parameters for issuing an invoice. ProfileID selects
// the issuer; the default profile is used when it is empty.
type CreateInvoiceRequest struct {
	ProfileID      string                         `json:"profileId"`
	Client         invoiceDomain.ClientInfo       `json:"client"`
	Items          []taxDomain.InvoiceItem        `json:"items"`
	HasWithholding bool                           `json:"hasWithholding"`
	TaxMethod      taxDomain.TaxCalculationMethod `json:"taxMethod"`
	IssueDate      string                         `json:"issueDate"`
	DueDate        string                         `json:"dueDate"`
	Notes          string                         `json:"notes"`
}

// ToDomain converts the request into a use case input.
func (r *CreateInvoiceRequest) ToDomain() *invoiceDomain.CreateInvoiceInput {
	return &invoiceDomain.CreateInvoiceInput{
		Client:         r.Client,
		Items:          r.Items,
		HasWithholding: r.HasWithholding,
		TaxMethod:      r.TaxMethod,
		IssueDate:      r.IssueDate,
		DueDate:        r.DueDate,
		Notes:          r.Notes,
	}
}
