package domain

import (
	"github.com/allisson/seikyu/internal/errors"
)

// Cryptographic operation error definitions.
//
// Every failure of a primitive is surfaced as one of these typed errors. The profile
// repository is the only place that converts them into a recovered load outcome.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrCrypto, "invalid key size")

	// ErrKeyDerivationFailed indicates the key could not be derived from the fingerprint.
	ErrKeyDerivationFailed = errors.Wrap(errors.ErrCrypto, "key derivation failed")

	// ErrMalformedEnvelope indicates the envelope could not be decoded (bad base64,
	// wrong nonce length, unknown algorithm).
	ErrMalformedEnvelope = errors.Wrap(errors.ErrCrypto, "malformed envelope")

	// ErrDecryptionFailed indicates authentication failed: wrong key, tampered
	// ciphertext or a mismatched nonce. The cause is intentionally not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrCrypto, "decryption failed")

	// ErrEncryptionFailed indicates nonce generation or sealing failed.
	ErrEncryptionFailed = errors.Wrap(errors.ErrCrypto, "encryption failed")
)
