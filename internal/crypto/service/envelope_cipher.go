package service

import (
	"encoding/base64"
	"errors"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
)

// EnvelopeCipher seals payloads into base64 encoded envelopes using the AEAD manager.
// No additional authenticated data is bound to the envelope.
type EnvelopeCipher struct {
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewEnvelopeCipher creates an EnvelopeCipher that seals new envelopes with algorithm.
// Envelopes are always opened with the algorithm recorded in them.
func NewEnvelopeCipher(aeadManager AEADManager, algorithm cryptoDomain.Algorithm) *EnvelopeCipher {
	return &EnvelopeCipher{
		aeadManager: aeadManager,
		algorithm:   algorithm,
	}
}

// Encrypt seals plaintext under key with a fresh nonce.
func (e *EnvelopeCipher) Encrypt(plaintext, key []byte) (cryptoDomain.Envelope, error) {
	cipher, err := e.aeadManager.CreateCipher(key, e.algorithm)
	if err != nil {
		return cryptoDomain.Envelope{}, err
	}

	ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
	if err != nil {
		return cryptoDomain.Envelope{}, cryptoDomain.ErrEncryptionFailed
	}

	return cryptoDomain.Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Algorithm:  e.algorithm,
	}, nil
}

// Decrypt opens envelope under key. Returns ErrMalformedEnvelope when the envelope
// cannot be decoded and ErrDecryptionFailed when authentication fails.
func (e *EnvelopeCipher) Decrypt(envelope cryptoDomain.Envelope, key []byte) ([]byte, error) {
	if envelope.IsZero() {
		return nil, cryptoDomain.ErrMalformedEnvelope
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return nil, cryptoDomain.ErrMalformedEnvelope
	}
	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil || len(nonce) != cryptoDomain.NonceSize {
		return nil, cryptoDomain.ErrMalformedEnvelope
	}

	cipher, err := e.aeadManager.CreateCipher(key, envelope.EffectiveAlgorithm())
	if err != nil {
		if errors.Is(err, cryptoDomain.ErrUnsupportedAlgorithm) {
			return nil, cryptoDomain.ErrMalformedEnvelope
		}
		return nil, err
	}

	return cipher.Decrypt(ciphertext, nonce, nil)
}
