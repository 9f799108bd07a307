// Package domain defines the types shared by the at-rest protection scheme: cipher
// algorithms, the storage envelope, the environment fingerprint and crypto errors.
package domain

// Algorithm represents the AEAD algorithm used to seal a storage envelope.
//
// Both algorithms use a 256-bit key, a 12-byte nonce and a 16-byte authentication tag.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM. It is the default and matches envelopes written
	// before the algorithm field existed.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305, for hosts without AES acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Key derivation parameters. They are part of the on-disk format: changing any of
// them makes every previously written envelope undecryptable.
const (
	// KeyDerivationSalt is the fixed PBKDF2 salt.
	KeyDerivationSalt = "invoice-creator-salt"

	// KeyDerivationIterations is the fixed PBKDF2 iteration count.
	KeyDerivationIterations = 100000

	// KeySize is the derived key length in bytes.
	KeySize = 32

	// NonceSize is the nonce length required by both supported algorithms.
	NonceSize = 12
)

// ParseAlgorithm converts a configuration string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, "":
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
