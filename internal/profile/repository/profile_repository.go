package repository

import (
	cryptoService "github.com/allisson/seikyu/internal/crypto/service"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	"github.com/allisson/seikyu/internal/storage"
)

// ProfileRepository is the encrypted repository holding the profile collection.
type ProfileRepository = EncryptedRepository[profileDomain.ProfileStorageData]

// NewProfileRepository creates the repository for the profiles storage key.
func NewProfileRepository(
	adapter storage.Adapter,
	keyProvider cryptoService.KeyProvider,
	sealer cryptoService.Sealer,
) *ProfileRepository {
	return NewEncryptedRepository[profileDomain.ProfileStorageData](
		adapter,
		storage.KeyProfiles,
		keyProvider,
		sealer,
	)
}
