package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
)

// aeadCipher holds the behaviour shared by every supported algorithm: random nonce
// generation on seal and nonce length checking on open.
type aeadCipher struct {
	aead cipher.AEAD
}

// Encrypt seals plaintext with a nonce read from crypto/rand. The returned ciphertext
// carries the 16-byte authentication tag at its end.
func (a *aeadCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt verifies the tag before returning any plaintext. A nonce of the wrong length
// is reported as ErrMalformedEnvelope; a tag mismatch, which is what a wrong key or a
// modified ciphertext produces, as ErrDecryptionFailed.
func (a *aeadCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, cryptoDomain.ErrMalformedEnvelope
	}

	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// AESGCMCipher implements AEAD with AES-256-GCM. It is the default algorithm for
// profile envelopes and the one assumed for envelopes that carry no algorithm field.
//
// Security properties:
//   - 256-bit key derived by PBKDF2 from the environment fingerprint
//   - 12-byte nonce read from crypto/rand on every Encrypt; a nonce is never reused
//     deliberately, and the random space makes accidental reuse negligible for the
//     number of writes a single user's profile store sees
//   - 16-byte authentication tag appended to the ciphertext; Decrypt verifies it
//     before any plaintext is returned
//
// Thread safety:
//
//	The cipher holds only the expanded key schedule and is safe for concurrent use.
//	AEADManagerService shares one instance between all goroutines.
//
// Example usage:
//
//	aead, err := NewAESGCM(key)
//	if err != nil {
//	    return err
//	}
//	ciphertext, nonce, err := aead.Encrypt(profilesJSON, nil)
//	...
//	profilesJSON, err = aead.Decrypt(ciphertext, nonce, nil)
type AESGCMCipher struct {
	aeadCipher
}

// NewAESGCM creates an AES-256-GCM cipher.
//
// The key must be exactly 32 bytes; any other length returns ErrInvalidKeySize
// without touching the key material.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aeadCipher{aead: aead}}, nil
}

// ChaCha20Poly1305Cipher implements AEAD with ChaCha20-Poly1305 (RFC 8439). Select it
// with CIPHER_ALGORITHM=chacha20-poly1305 on hosts without AES hardware support.
//
// Security properties:
//   - 256-bit key, the same derived key used for AES-GCM
//   - 12-byte random nonce per Encrypt (the standard variant, not XChaCha20)
//   - 16-byte Poly1305 tag appended to the ciphertext and verified on Decrypt
//
// Envelopes record the algorithm that sealed them, so switching algorithms keeps
// older envelopes readable.
//
// Thread safety:
//
//	Safe for concurrent use; the instance is immutable after construction.
type ChaCha20Poly1305Cipher struct {
	aeadCipher
}

// NewChaCha20Poly1305 creates a ChaCha20-Poly1305 cipher. The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{aeadCipher{aead: aead}}, nil
}
