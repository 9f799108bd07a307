// Package usecase implements business logic orchestration for issuer profiles.
package usecase

import (
	"context"

	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	profileRepository "github.com/allisson/seikyu/internal/profile/repository"
)

// ProfileRepository defines persistence for the whole profile collection.
type ProfileRepository interface {
	// Load reads the collection. The error is set only for storage failures; crypto and
	// decoding failures are reported through the result outcome.
	Load(ctx context.Context) (profileRepository.LoadResult[profileDomain.ProfileStorageData], error)

	// Save replaces the collection.
	Save(ctx context.Context, data profileDomain.ProfileStorageData) error
}

// ProfileUseCase defines the operations on issuer profiles. Every operation reads and
// writes the whole collection, and whenever the collection is not empty exactly one
// profile is the default.
type ProfileUseCase interface {
	// List returns all profiles in stored order. Unreadable data yields an empty list,
	// never an error.
	List(ctx context.Context) ([]profileDomain.IssuerProfile, error)

	// SaveAll replaces the collection as given.
	SaveAll(ctx context.Context, profiles []profileDomain.IssuerProfile) error

	// Create validates input and appends a new profile. The first profile becomes the default.
	Create(ctx context.Context, input *profileDomain.CreateProfileInput) (*profileDomain.IssuerProfile, error)

	// Update replaces the sections present in input. Returns ErrProfileNotFound if the
	// profile doesn't exist.
	Update(
		ctx context.Context,
		id string,
		input *profileDomain.UpdateProfileInput,
	) (*profileDomain.IssuerProfile, error)

	// Delete removes a profile, promoting the first remaining one when the default is removed.
	Delete(ctx context.Context, id string) error

	// SetDefault makes id the only default profile. Returns ErrProfileNotFound without
	// changing anything when id is unknown.
	SetDefault(ctx context.Context, id string) error

	// GetDefault returns the default profile, else the first one. Returns ErrProfileNotFound
	// when there are no profiles.
	GetDefault(ctx context.Context) (*profileDomain.IssuerProfile, error)

	// Get returns the profile with id or ErrProfileNotFound.
	Get(ctx context.Context, id string) (*profileDomain.IssuerProfile, error)

	// Export returns the collection as an indented, unencrypted backup document.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces the collection with the profiles of a backup document and returns
	// how many were imported. Returns ErrImportFormat and leaves stored data untouched
	// when the document is invalid.
	Import(ctx context.Context, data []byte) (int, error)
}
