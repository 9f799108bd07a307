// Package usecase implements invoice issuing, listing and numbering.
package usecase

import (
	"context"

	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// InvoiceRepository defines persistence for the invoice list.
type InvoiceRepository interface {
	List(ctx context.Context) ([]invoiceDomain.InvoiceRecord, error)
	SaveAll(ctx context.Context, invoices []invoiceDomain.InvoiceRecord) error
}

// CounterRepository defines persistence for the invoice number counter.
type CounterRepository interface {
	Get(ctx context.Context) (invoiceDomain.InvoiceCounter, bool, error)
	Save(ctx context.Context, counter invoiceDomain.InvoiceCounter) error
}

// ProfileResolver looks up the issuer of a new invoice.
type ProfileResolver interface {
	Get(ctx context.Context, id string) (*profileDomain.IssuerProfile, error)
	GetDefault(ctx context.Context) (*profileDomain.IssuerProfile, error)
}

// NumberSequence issues invoice numbers of the form <prefix><year>-<NNN>. The counter
// restarts at 1 when the calendar year changes.
type NumberSequence interface {
	// Next returns the next number and persists the advanced counter.
	Next(ctx context.Context) (string, error)

	// Peek returns the number Next would issue without persisting anything.
	Peek(ctx context.Context) (string, error)
}

// InvoiceUseCase defines the operations on issued invoices.
type InvoiceUseCase interface {
	// Create validates input, issues the next number and stores the invoice with a
	// snapshot of issuer and the computed calculation.
	Create(
		ctx context.Context,
		issuer profileDomain.IssuerProfile,
		input *invoiceDomain.CreateInvoiceInput,
	) (*invoiceDomain.InvoiceRecord, error)

	// CreateForProfile resolves the issuer by id, or uses the default profile when
	// profileID is empty, then behaves like Create.
	CreateForProfile(
		ctx context.Context,
		profileID string,
		input *invoiceDomain.CreateInvoiceInput,
	) (*invoiceDomain.InvoiceRecord, error)

	// List returns summaries of the invoices matching filter in stored order.
	List(ctx context.Context, filter invoiceDomain.InvoiceFilter) ([]invoiceDomain.InvoiceSummary, error)

	// Get returns the invoice with id or ErrInvoiceNotFound.
	Get(ctx context.Context, id string) (*invoiceDomain.InvoiceRecord, error)

	// Delete removes the invoice with id or returns ErrInvoiceNotFound.
	Delete(ctx context.Context, id string) error

	// NextNumber previews the number the next invoice will receive.
	NextNumber(ctx context.Context) (string, error)
}
