// Package domain defines issued invoices and the year-scoped invoice number counter.
package domain

import (
	"fmt"
	"strings"
	"time"

	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
)

// Defaults applied when the configuration does not override them.
const (
	DefaultPaymentTermsDays = 30
	DefaultNumberPadding    = 3
)

// ClientInfo identifies the billed party.
type ClientInfo struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Department  string `json:"department,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
}

// InvoiceRecord is an issued invoice. Issuer is a snapshot taken at creation, so later
// profile edits do not change invoices that were already issued.
type InvoiceRecord struct {
	ID             string                       `json:"id"`
	InvoiceNumber  string                       `json:"invoiceNumber"`
	IssueDate      string                       `json:"issueDate"`
	DueDate        string                       `json:"dueDate"`
	Issuer         profileDomain.IssuerProfile  `json:"issuer"`
	Client         ClientInfo                   `json:"client"`
	Items          []taxDomain.InvoiceItem      `json:"items"`
	Calculation    taxDomain.InvoiceCalculation `json:"calculation"`
	HasWithholding bool                         `json:"hasWithholding"`
	Notes          string                       `json:"notes,omitempty"`
	CreatedAt      time.Time                    `json:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt"`
}

// Summary returns the list view of the invoice.
func (r *InvoiceRecord) Summary() InvoiceSummary {
	return InvoiceSummary{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		ClientName:    r.Client.Name,
		FinalAmount:   r.Calculation.FinalAmount,
		IssueDate:     r.IssueDate,
	}
}

// CreateInvoiceInput contains the data for a new invoice. Empty dates are filled in by
// the use case: today for IssueDate and IssueDate plus the payment terms for DueDate.
type CreateInvoiceInput struct {
	Client         ClientInfo                     `json:"client"`
	Items          []taxDomain.InvoiceItem        `json:"items"`
	HasWithholding bool                           `json:"hasWithholding"`
	TaxMethod      taxDomain.TaxCalculationMethod `json:"taxMethod"`
	IssueDate      string                         `json:"issueDate,omitempty"`
	DueDate        string                         `json:"dueDate,omitempty"`
	Notes          string                         `json:"notes,omitempty"`
}

// InvoiceSummary is one row of the invoice list.
type InvoiceSummary struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	ClientName    string `json:"clientName"`
	FinalAmount   int64  `json:"finalAmount"`
	IssueDate     string `json:"issueDate"`
}

// InvoiceFilter narrows the invoice list. Empty fields match everything. Dates are
// inclusive YYYY-MM-DD bounds on the issue date.
type InvoiceFilter struct {
	ClientName string `json:"clientName,omitempty"`
	DateFrom   string `json:"dateFrom,omitempty"`
	DateTo     string `json:"dateTo,omitempty"`
}

// Matches reports whether r passes the filter. Client names match case-insensitively on
// substrings of either the client or the company name.
func (f InvoiceFilter) Matches(r *InvoiceRecord) bool {
	if f.ClientName != "" {
		needle := strings.ToLower(f.ClientName)
		if !strings.Contains(strings.ToLower(r.Client.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Client.CompanyName), needle) {
			return false
		}
	}
	// ISO dates order lexically.
	if f.DateFrom != "" && r.IssueDate < f.DateFrom {
		return false
	}
	if f.DateTo != "" && r.IssueDate > f.DateTo {
		return false
	}
	return true
}

// InvoiceCounter is the next sequence number to issue within Year.
type InvoiceCounter struct {
	Year   int `json:"year"`
	Number int `json:"number"`
}

// FormatInvoiceNumber renders <prefix><year>-<number>, zero-padding number to width.
func FormatInvoiceNumber(prefix string, year, number, width int) string {
	return fmt.Sprintf("%s%d-%0*d", prefix, year, width, number)
}
