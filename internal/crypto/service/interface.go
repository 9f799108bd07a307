// Package service implements the at-rest protection scheme: deterministic key
// derivation from the environment fingerprint, AEAD ciphers, and sealing of payloads
// into portable storage envelopes.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and a fresh nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyProvider supplies the symmetric key used to seal envelopes.
type KeyProvider interface {
	// DeriveKey returns the key. Implementations compute it at most once.
	DeriveKey(ctx context.Context) ([]byte, error)
}

// Sealer encrypts and decrypts opaque payloads into storage envelopes.
type Sealer interface {
	// Encrypt seals plaintext under key with a fresh random nonce.
	Encrypt(plaintext, key []byte) (cryptoDomain.Envelope, error)

	// Decrypt opens an envelope sealed under key.
	Decrypt(envelope cryptoDomain.Envelope, key []byte) ([]byte, error)
}
