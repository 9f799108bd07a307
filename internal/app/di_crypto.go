package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
	cryptoService "github.com/allisson/seikyu/internal/crypto/service"
)

// KeyProvider returns the provider deriving the at-rest key from the configured
// environment fingerprint. One instance is shared so the key is derived once.
func (c *Container) KeyProvider() cryptoService.KeyProvider {
	c.keyProviderInit.Do(func() {
		c.keyProvider = cryptoService.NewKeyDerivationProvider(c.config.Fingerprint())
	})
	return c.keyProvider
}

// EnvelopeCipher returns the sealer for new envelopes, using the configured algorithm.
func (c *Container) EnvelopeCipher() (cryptoService.Sealer, error) {
	err := c.initOnce(&c.envelopeCipherInit, "envelopeCipher", func() error {
		alg, err := cryptoDomain.ParseAlgorithm(c.config.CipherAlgorithm)
		if err != nil {
			return fmt.Errorf("failed to parse cipher algorithm: %w", err)
		}
		c.envelopeCipher = cryptoService.NewEnvelopeCipher(cryptoService.NewAEADManager(), alg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.envelopeCipher, nil
}
