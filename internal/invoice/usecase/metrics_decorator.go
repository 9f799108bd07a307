package usecase

import (
	"context"
	"time"

	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	"github.com/allisson/seikyu/internal/metrics"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// invoiceUseCaseWithMetrics decorates InvoiceUseCase with metrics instrumentation.
type invoiceUseCaseWithMetrics struct {
	next    InvoiceUseCase
	metrics metrics.BusinessMetrics
}

// NewInvoiceUseCaseWithMetrics wraps an InvoiceUseCase with metrics recording.
func NewInvoiceUseCaseWithMetrics(useCase InvoiceUseCase, m metrics.BusinessMetrics) InvoiceUseCase {
	return &invoiceUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *invoiceUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, i.metrics, "invoices", operation, start, err)
}

// Create records metrics for invoice creation.
func (i *invoiceUseCaseWithMetrics) Create(
	ctx context.Context,
	issuer profileDomain.IssuerProfile,
	input *invoiceDomain.CreateInvoiceInput,
) (*invoiceDomain.InvoiceRecord, error) {
	start := time.Now()
	record, err := i.next.Create(ctx, issuer, input)
	i.record(ctx, "invoice_create", start, err)
	return record, err
}

// CreateForProfile records metrics for invoice creation by profile id.
func (i *invoiceUseCaseWithMetrics) CreateForProfile(
	ctx context.Context,
	profileID string,
	input *invoiceDomain.CreateInvoiceInput,
) (*invoiceDomain.InvoiceRecord, error) {
	start := time.Now()
	record, err := i.next.CreateForProfile(ctx, profileID, input)
	i.record(ctx, "invoice_create_for_profile", start, err)
	return record, err
}

// List records metrics for invoice listing.
func (i *invoiceUseCaseWithMetrics) List(
	ctx context.Context,
	filter invoiceDomain.InvoiceFilter,
) ([]invoiceDomain.InvoiceSummary, error) {
	start := time.Now()
	summaries, err := i.next.List(ctx, filter)
	i.record(ctx, "invoice_list", start, err)
	return summaries, err
}

// Get records metrics for invoice retrieval.
func (i *invoiceUseCaseWithMetrics) Get(ctx context.Context, id string) (*invoiceDomain.InvoiceRecord, error) {
	start := time.Now()
	record, err := i.next.Get(ctx, id)
	i.record(ctx, "invoice_get", start, err)
	return record, err
}

// Delete records metrics for invoice deletion.
func (i *invoiceUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := i.next.Delete(ctx, id)
	i.record(ctx, "invoice_delete", start, err)
	return err
}

// NextNumber records metrics for number previews.
func (i *invoiceUseCaseWithMetrics) NextNumber(ctx context.Context) (string, error) {
	start := time.Now()
	number, err := i.next.NextNumber(ctx)
	i.record(ctx, "invoice_next_number", start, err)
	return number, err
}
