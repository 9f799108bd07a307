package domain

import (
	"strconv"
)

// Fingerprint holds the stable environment attributes the at-rest key is derived from.
//
// It is an identity of the execution environment, not a secret: anyone who can read
// these attributes can rebuild the key. The scheme only keeps personal and bank data
// away from casual inspection of the data directory.
type Fingerprint struct {
	// UserAgent identifies the client software and host.
	UserAgent string
	// Locale is the operator's language tag (e.g., "ja-JP").
	Locale string
	// DisplayWidth is the width of the primary display in pixels.
	DisplayWidth int
}

// String returns the key material: the attributes concatenated without separators.
func (f Fingerprint) String() string {
	return f.UserAgent + f.Locale + strconv.Itoa(f.DisplayWidth)
}

// IsZero reports whether the fingerprint has no identifying attributes.
func (f Fingerprint) IsZero() bool {
	return f.UserAgent == "" && f.Locale == "" && f.DisplayWidth == 0
}
