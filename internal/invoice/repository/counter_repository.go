package repository

import (
	"context"

	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	"github.com/allisson/seikyu/internal/storage"
)

// CounterRepository stores the invoice number counter under storage.KeyInvoiceCounter.
type CounterRepository struct {
	store *storage.Service
}

// NewCounterRepository creates a new CounterRepository.
func NewCounterRepository(store *storage.Service) *CounterRepository {
	return &CounterRepository{store: store}
}

// Get returns the stored counter. found is false when no number was ever issued.
func (r *CounterRepository) Get(ctx context.Context) (counter invoiceDomain.InvoiceCounter, found bool, err error) {
	found, err = r.store.LoadJSON(ctx, storage.KeyInvoiceCounter, &counter)
	return counter, found, err
}

// Save replaces the counter.
func (r *CounterRepository) Save(ctx context.Context, counter invoiceDomain.InvoiceCounter) error {
	return r.store.SaveJSON(ctx, storage.KeyInvoiceCounter, counter)
}
