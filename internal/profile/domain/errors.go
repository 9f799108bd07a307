package domain

import (
	"github.com/allisson/seikyu/internal/errors"
)

// Profile-specific error definitions.
var (
	// ErrProfileNotFound indicates no profile exists with the requested id, or the collection is empty.
	ErrProfileNotFound = errors.Wrap(errors.ErrNotFound, "profile not found")

	// ErrImportFormat indicates a backup document is not valid JSON or has no profiles array.
	ErrImportFormat = errors.Wrap(errors.ErrUnsupportedFormat, "invalid backup format")
)
