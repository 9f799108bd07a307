package app

import (
	"fmt"

	profileHTTP "github.com/allisson/seikyu/internal/profile/http"
	profileRepository "github.com/allisson/seikyu/internal/profile/repository"
	profileUseCase "github.com/allisson/seikyu/internal/profile/usecase"
)

// ProfileRepository returns the encrypted profile repository.
func (c *Container) ProfileRepository() (*profileRepository.ProfileRepository, error) {
	err := c.initOnce(&c.profileRepoInit, "profileRepository", func() error {
		adapter, err := c.StorageAdapter()
		if err != nil {
			return fmt.Errorf("failed to get storage adapter for profile repository: %w", err)
		}
		sealer, err := c.EnvelopeCipher()
		if err != nil {
			return fmt.Errorf("failed to get envelope cipher for profile repository: %w", err)
		}
		c.profileRepository = profileRepository.NewProfileRepository(adapter, c.KeyProvider(), sealer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.profileRepository, nil
}

// ProfileUseCase returns the profile use case, wrapped with metrics when enabled.
func (c *Container) ProfileUseCase() (profileUseCase.ProfileUseCase, error) {
	err := c.initOnce(&c.profileUseCaseInit, "profileUseCase", func() error {
		var err error
		c.profileUseCase, err = c.initProfileUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.profileUseCase, nil
}

// ProfileHandler returns the HTTP handler for issuer profiles.
func (c *Container) ProfileHandler() (*profileHTTP.ProfileHandler, error) {
	err := c.initOnce(&c.profileHandlerInit, "profileHandler", func() error {
		useCase, err := c.ProfileUseCase()
		if err != nil {
			return fmt.Errorf("failed to get profile use case for profile handler: %w", err)
		}
		c.profileHandler = profileHTTP.NewProfileHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.profileHandler, nil
}

func (c *Container) initProfileUseCase() (profileUseCase.ProfileUseCase, error) {
	repo, err := c.ProfileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile repository for profile use case: %w", err)
	}

	baseUseCase := profileUseCase.NewProfileUseCase(repo, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for profile use case: %w", err)
		}
		return profileUseCase.NewProfileUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
