// Package repository persists the profile collection as an encrypted envelope.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
	cryptoService "github.com/allisson/seikyu/internal/crypto/service"
	apperrors "github.com/allisson/seikyu/internal/errors"
	"github.com/allisson/seikyu/internal/storage"
)

// Outcome describes how a stored value was read.
type Outcome string

const (
	// OutcomeNotFound means nothing is stored under the key.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeDecrypted means the envelope was opened and decoded.
	OutcomeDecrypted Outcome = "decrypted"
	// OutcomePlaintextFallback means decryption failed but the raw value decoded as
	// plaintext. Data written before encryption was introduced takes this path.
	OutcomePlaintextFallback Outcome = "plaintext_fallback"
	// OutcomeRecoveredEmpty means neither decryption nor plaintext decoding succeeded and
	// the zero value is returned in place of the stored data.
	OutcomeRecoveredEmpty Outcome = "recovered_empty"
)

// LoadResult is the value read by EncryptedRepository.Load. Err holds the decryption or
// decoding failure that was recovered from, if any.
type LoadResult[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

// Recovered reports whether the value was produced by a recovery path.
func (r LoadResult[T]) Recovered() bool {
	return r.Outcome == OutcomePlaintextFallback || r.Outcome == OutcomeRecoveredEmpty
}

// EncryptedRepository stores one JSON document of type T sealed in an envelope under a
// single storage key.
type EncryptedRepository[T any] struct {
	adapter     storage.Adapter
	key         string
	keyProvider cryptoService.KeyProvider
	sealer      cryptoService.Sealer
}

// NewEncryptedRepository creates a repository for the document stored under key.
func NewEncryptedRepository[T any](
	adapter storage.Adapter,
	key string,
	keyProvider cryptoService.KeyProvider,
	sealer cryptoService.Sealer,
) *EncryptedRepository[T] {
	return &EncryptedRepository[T]{
		adapter:     adapter,
		key:         key,
		keyProvider: keyProvider,
		sealer:      sealer,
	}
}

// Load reads the document. Crypto and decoding failures never escape as errors: they
// are reported through the outcome. The returned error is set only when the storage
// backend itself failed, so callers that go on to write can refuse to overwrite data
// they could not read.
func (r *EncryptedRepository[T]) Load(ctx context.Context) (LoadResult[T], error) {
	raw, err := r.adapter.Get(ctx, r.key)
	if err != nil {
		if apperrors.Is(err, storage.ErrKeyNotFound) {
			return LoadResult[T]{Outcome: OutcomeNotFound}, nil
		}
		return LoadResult[T]{}, err
	}

	value, openErr := r.open(ctx, raw)
	if openErr == nil {
		return LoadResult[T]{Value: value, Outcome: OutcomeDecrypted}, nil
	}

	var plain T
	if parseErr := json.Unmarshal(raw, &plain); parseErr != nil {
		return LoadResult[T]{
			Outcome: OutcomeRecoveredEmpty,
			Err:     errors.Join(openErr, apperrors.Wrap(apperrors.ErrUnsupportedFormat, parseErr.Error())),
		}, nil
	}
	return LoadResult[T]{Value: plain, Outcome: OutcomePlaintextFallback, Err: openErr}, nil
}

// Save seals value and replaces the stored document.
func (r *EncryptedRepository[T]) Save(ctx context.Context, value T) error {
	key, err := r.keyProvider.DeriveKey(ctx)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode document")
	}
	defer cryptoDomain.Zero(plaintext)

	envelope, err := r.sealer.Encrypt(plaintext, key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode envelope")
	}
	return r.adapter.Set(ctx, r.key, data)
}

func (r *EncryptedRepository[T]) open(ctx context.Context, raw []byte) (T, error) {
	var value T

	key, err := r.keyProvider.DeriveKey(ctx)
	if err != nil {
		return value, err
	}

	var envelope cryptoDomain.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.IsZero() {
		return value, cryptoDomain.ErrMalformedEnvelope
	}

	plaintext, err := r.sealer.Decrypt(envelope, key)
	if err != nil {
		return value, err
	}
	defer cryptoDomain.Zero(plaintext)

	if err := json.Unmarshal(plaintext, &value); err != nil {
		return value, apperrors.Wrap(apperrors.ErrUnsupportedFormat, "decrypted payload: "+err.Error())
	}
	return value, nil
}
