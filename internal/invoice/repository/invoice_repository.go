// Package repository persists issued invoices and the invoice number counter as
// plaintext JSON documents.
package repository

import (
	"context"

	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	"github.com/allisson/seikyu/internal/storage"
)

// InvoiceRepository stores the invoice list under storage.KeyInvoices.
type InvoiceRepository struct {
	store *storage.Service
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(store *storage.Service) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// List returns every stored invoice, or an empty list when none were saved. A stored
// value that does not decode is returned as an error wrapping ErrUnsupportedFormat.
func (r *InvoiceRepository) List(ctx context.Context) ([]invoiceDomain.InvoiceRecord, error) {
	var invoices []invoiceDomain.InvoiceRecord
	found, err := r.store.LoadJSON(ctx, storage.KeyInvoices, &invoices)
	if err != nil {
		return nil, err
	}
	if !found || invoices == nil {
		return []invoiceDomain.InvoiceRecord{}, nil
	}
	return invoices, nil
}

// SaveAll replaces the invoice list.
func (r *InvoiceRepository) SaveAll(ctx context.Context, invoices []invoiceDomain.InvoiceRecord) error {
	if invoices == nil {
		invoices = []invoiceDomain.InvoiceRecord{}
	}
	return r.store.SaveJSON(ctx, storage.KeyInvoices, invoices)
}
