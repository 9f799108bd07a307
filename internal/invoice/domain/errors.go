package domain

import (
	"github.com/allisson/seikyu/internal/errors"
)

// ErrInvoiceNotFound indicates no invoice exists with the requested id.
var ErrInvoiceNotFound = errors.Wrap(errors.ErrNotFound, "invoice not found")
