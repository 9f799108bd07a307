package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/seikyu/internal/errors"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	"github.com/allisson/seikyu/internal/validation"
)

// profileUseCase implements ProfileUseCase.
//
// All operations hold mu for their full read-modify-write cycle, so concurrent callers in
// one process always observe each other's writes. Separate processes sharing the same
// storage are not coordinated and the last write wins.
type profileUseCase struct {
	mu     sync.Mutex
	repo   ProfileRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(repo ProfileRepository, logger *slog.Logger) ProfileUseCase {
	return newProfileUseCase(repo, logger, time.Now)
}

func newProfileUseCase(repo ProfileRepository, logger *slog.Logger, now func() time.Time) *profileUseCase {
	return &profileUseCase{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

// load reads the collection, logging recovered outcomes.
func (p *profileUseCase) load(ctx context.Context) ([]profileDomain.IssuerProfile, error) {
	result, err := p.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if result.Recovered() {
		p.logger.Warn("profile data recovered",
			slog.String("outcome", string(result.Outcome)),
			slog.Int("profiles", len(result.Value.Profiles)),
			slog.Any("error", result.Err),
		)
	}
	return result.Value.Profiles, nil
}

func (p *profileUseCase) save(ctx context.Context, profiles []profileDomain.IssuerProfile) error {
	if profiles == nil {
		profiles = []profileDomain.IssuerProfile{}
	}
	lastBackup := p.now().UTC()
	return p.repo.Save(ctx, profileDomain.ProfileStorageData{
		Profiles:   profiles,
		Version:    profileDomain.DataVersion,
		LastBackup: &lastBackup,
	})
}

// List returns all profiles.
func (p *profileUseCase) List(ctx context.Context) ([]profileDomain.IssuerProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		p.logger.Error("failed to read profiles", slog.Any("error", err))
		return []profileDomain.IssuerProfile{}, nil
	}
	if profiles == nil {
		return []profileDomain.IssuerProfile{}, nil
	}
	return profiles, nil
}

// SaveAll replaces the collection.
func (p *profileUseCase) SaveAll(ctx context.Context, profiles []profileDomain.IssuerProfile) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.save(ctx, profiles)
}

// Create appends a new profile.
func (p *profileUseCase) Create(
	ctx context.Context,
	input *profileDomain.CreateProfileInput,
) (*profileDomain.IssuerProfile, error) {
	in := *input
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	now := p.now().UTC()
	profile := profileDomain.IssuerProfile{
		ID:           uuid.Must(uuid.NewV7()).String(),
		PersonalInfo: in.PersonalInfo,
		BankInfo:     in.BankInfo,
		TaxInfo:      in.TaxInfo,
		Meta: profileDomain.ProfileMeta{
			ProfileName: in.ProfileName,
			IsDefault:   len(profiles) == 0,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	if err := p.save(ctx, append(profiles, profile)); err != nil {
		return nil, err
	}

	p.logger.Info("profile created",
		slog.String("profile_id", profile.ID),
		slog.Bool("is_default", profile.Meta.IsDefault),
	)
	return &profile, nil
}

// Update merges input into the stored profile.
func (p *profileUseCase) Update(
	ctx context.Context,
	id string,
	input *profileDomain.UpdateProfileInput,
) (*profileDomain.IssuerProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	index := profileDomain.FindByID(profiles, id)
	if index < 0 {
		return nil, profileDomain.ErrProfileNotFound
	}

	profile := profiles[index]
	if input.PersonalInfo != nil {
		profile.PersonalInfo = *input.PersonalInfo
	}
	if input.BankInfo != nil {
		profile.BankInfo = *input.BankInfo
	}
	if input.TaxInfo != nil {
		profile.TaxInfo = *input.TaxInfo
	}
	if input.ProfileName != nil {
		profile.Meta.ProfileName = *input.ProfileName
	}
	profile.Meta.UpdatedAt = p.now().UTC()
	profiles[index] = profile

	if err := p.save(ctx, profiles); err != nil {
		return nil, err
	}

	p.logger.Info("profile updated", slog.String("profile_id", id))
	return &profile, nil
}

// Delete removes a profile.
func (p *profileUseCase) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return err
	}

	index := profileDomain.FindByID(profiles, id)
	if index < 0 {
		return profileDomain.ErrProfileNotFound
	}

	wasDefault := profiles[index].Meta.IsDefault
	profiles = slices.Delete(profiles, index, index+1)
	if wasDefault && len(profiles) > 0 {
		profiles[0].Meta.IsDefault = true
	}

	if err := p.save(ctx, profiles); err != nil {
		return err
	}

	p.logger.Info("profile deleted",
		slog.String("profile_id", id),
		slog.Bool("was_default", wasDefault),
	)
	return nil
}

// SetDefault makes id the default profile.
func (p *profileUseCase) SetDefault(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return err
	}

	index := profileDomain.FindByID(profiles, id)
	if index < 0 {
		return profileDomain.ErrProfileNotFound
	}

	profileDomain.MarkDefault(profiles, index)
	if err := p.save(ctx, profiles); err != nil {
		return err
	}

	p.logger.Info("default profile changed", slog.String("profile_id", id))
	return nil
}

// GetDefault returns the default profile.
func (p *profileUseCase) GetDefault(ctx context.Context) (*profileDomain.IssuerProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, profileDomain.ErrProfileNotFound
	}

	index := profileDomain.DefaultIndex(profiles)
	if index < 0 {
		index = 0
	}
	profile := profiles[index]
	return &profile, nil
}

// Get returns the profile with id.
func (p *profileUseCase) Get(ctx context.Context, id string) (*profileDomain.IssuerProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	index := profileDomain.FindByID(profiles, id)
	if index < 0 {
		return nil, profileDomain.ErrProfileNotFound
	}
	profile := profiles[index]
	return &profile, nil
}

// Export serializes the collection as a backup document.
func (p *profileUseCase) Export(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []profileDomain.IssuerProfile{}
	}

	data, err := json.MarshalIndent(profileDomain.BackupDocument{
		Profiles:   profiles,
		Version:    profileDomain.DataVersion,
		ExportedAt: p.now().UTC(),
	}, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode backup")
	}
	return data, nil
}

// importDocument accepts any backup whose profiles field is a JSON array.
type importDocument struct {
	Profiles json.RawMessage `json:"profiles"`
}

// Import replaces the collection from a backup document.
func (p *profileUseCase) Import(ctx context.Context, data []byte) (int, error) {
	profiles, err := parseBackup(data)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.save(ctx, profiles); err != nil {
		return 0, err
	}

	p.logger.Info("profiles imported", slog.Int("profiles", len(profiles)))
	return len(profiles), nil
}

// parseBackup decodes and normalizes the profiles of a backup document.
func parseBackup(data []byte) ([]profileDomain.IssuerProfile, error) {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(profileDomain.ErrImportFormat, err.Error())
	}

	var profiles []profileDomain.IssuerProfile
	if len(doc.Profiles) == 0 || doc.Profiles[0] != '[' {
		return nil, apperrors.Wrap(profileDomain.ErrImportFormat, "profiles must be an array")
	}
	if err := json.Unmarshal(doc.Profiles, &profiles); err != nil {
		return nil, apperrors.Wrap(profileDomain.ErrImportFormat, err.Error())
	}

	for i, profile := range profiles {
		if profile.ID == "" {
			return nil, apperrors.Wrapf(profileDomain.ErrImportFormat, "profile %d has no id", i)
		}
	}

	profileDomain.NormalizeDefault(profiles)
	return profiles, nil
}
