package service

import (
	"context"
	"crypto/sha256"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
)

// KeyDerivationProvider derives the at-rest key from the environment fingerprint with
// PBKDF2-HMAC-SHA256, a fixed salt and a fixed iteration count.
//
// The key is computed at most once per provider and then shared read-only, so the
// provider is safe for concurrent use. The composition root owns one instance and
// hands it to every component that needs the key.
type KeyDerivationProvider struct {
	fingerprint cryptoDomain.Fingerprint

	once sync.Once
	key  []byte
	err  error
}

// NewKeyDerivationProvider creates a provider for the given fingerprint.
func NewKeyDerivationProvider(fingerprint cryptoDomain.Fingerprint) *KeyDerivationProvider {
	return &KeyDerivationProvider{fingerprint: fingerprint}
}

// DeriveKey returns the derived key. The first call pays for the 100 000 PBKDF2
// iterations; later calls return the cached key or the cached failure.
func (p *KeyDerivationProvider) DeriveKey(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.once.Do(func() {
		if p.fingerprint.IsZero() {
			p.err = cryptoDomain.ErrKeyDerivationFailed
			return
		}
		p.key = pbkdf2.Key(
			[]byte(p.fingerprint.String()),
			[]byte(cryptoDomain.KeyDerivationSalt),
			cryptoDomain.KeyDerivationIterations,
			cryptoDomain.KeySize,
			sha256.New,
		)
	})

	return p.key, p.err
}

// Fingerprint returns the fingerprint the key is derived from.
func (p *KeyDerivationProvider) Fingerprint() cryptoDomain.Fingerprint {
	return p.fingerprint
}
