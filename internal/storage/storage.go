// Package storage provides the key/value persistence used by the profile and invoice
// repositories. Values are opaque bytes; callers decide whether a key holds plaintext JSON
// or an encrypted envelope.
//
// Every mutation is a whole-document write. Within one process the use cases serialize
// their read-modify-write cycles; across processes the last writer wins.
package storage

import (
	"context"
	"fmt"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

// Keys persisted by the application.
const (
	// KeyProfiles holds an encrypted envelope over the profile collection.
	KeyProfiles = "invoice_creator_profiles"

	// KeyInvoices holds the plaintext JSON array of issued invoices.
	KeyInvoices = "invoice_creator_invoices"

	// KeyInvoiceCounter holds the plaintext {year, number} invoice counter.
	KeyInvoiceCounter = "invoice_creator_counter"
)

// KnownKeys returns every key the application writes.
func KnownKeys() []string {
	return []string{KeyProfiles, KeyInvoices, KeyInvoiceCounter}
}

// Storage drivers accepted by NewAdapter.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// ErrKeyNotFound is returned by Adapter.Get when the key has never been written or was removed.
var ErrKeyNotFound = apperrors.Wrap(apperrors.ErrNotFound, "storage key not found")

// Adapter is a string-keyed byte store.
type Adapter interface {
	// Get returns the value stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Exists reports whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases the resources held by the adapter.
	Close() error
}

func wrapStorageError(err error, message string) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStorage, message, err)
}
