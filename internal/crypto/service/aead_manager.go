package service

import (
	"crypto/sha256"
	"sync"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
)

type cachedCipher struct {
	keyDigest [sha256.Size]byte
	aead      AEAD
}

// AEADManagerService builds AEAD ciphers for envelope sealing.
//
// The storage key is derived once per process, so the last cipher built for each
// algorithm is reused while the same key keeps being presented. Keys are compared by
// their SHA-256 digest, so the cache keeps no copy of the raw key.
//
// Thread safety:
//
//	CreateCipher is safe for concurrent use. The cache is guarded by a mutex and the
//	returned ciphers are themselves safe to share, so callers never need their own
//	instance.
//
// Nonces are generated by the returned cipher on every Encrypt, never by the manager,
// so reusing a cached cipher never reuses a nonce.
type AEADManagerService struct {
	mu    sync.Mutex
	cache map[cryptoDomain.Algorithm]cachedCipher
}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{cache: make(map[cryptoDomain.Algorithm]cachedCipher)}
}

// CreateCipher returns an AEAD cipher for alg under key.
// Returns ErrInvalidKeySize if key is not 32 bytes or ErrUnsupportedAlgorithm if algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	digest := sha256.Sum256(key)

	am.mu.Lock()
	defer am.mu.Unlock()

	if cached, ok := am.cache[alg]; ok && cached.keyDigest == digest {
		return cached.aead, nil
	}

	var (
		aead AEAD
		err  error
	)
	switch alg {
	case cryptoDomain.AESGCM:
		aead, err = NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		aead, err = NewChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, err
	}

	am.cache[alg] = cachedCipher{keyDigest: digest, aead: aead}
	return aead, nil
}
