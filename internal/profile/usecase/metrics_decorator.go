package usecase

import (
	"context"
	"time"

	"github.com/allisson/seikyu/internal/metrics"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// profileUseCaseWithMetrics decorates ProfileUseCase with metrics instrumentation.
type profileUseCaseWithMetrics struct {
	next    ProfileUseCase
	metrics metrics.BusinessMetrics
}

// NewProfileUseCaseWithMetrics wraps a ProfileUseCase with metrics recording.
func NewProfileUseCaseWithMetrics(useCase ProfileUseCase, m metrics.BusinessMetrics) ProfileUseCase {
	return &profileUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *profileUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, p.metrics, "profiles", operation, start, err)
}

// List records metrics for profile listing.
func (p *profileUseCaseWithMetrics) List(ctx context.Context) ([]profileDomain.IssuerProfile, error) {
	start := time.Now()
	profiles, err := p.next.List(ctx)
	p.record(ctx, "profile_list", start, err)
	return profiles, err
}

// SaveAll records metrics for collection replacement.
func (p *profileUseCaseWithMetrics) SaveAll(ctx context.Context, profiles []profileDomain.IssuerProfile) error {
	start := time.Now()
	err := p.next.SaveAll(ctx, profiles)
	p.record(ctx, "profile_save_all", start, err)
	return err
}

// Create records metrics for profile creation.
func (p *profileUseCaseWithMetrics) Create(
	ctx context.Context,
	input *profileDomain.CreateProfileInput,
) (*profileDomain.IssuerProfile, error) {
	start := time.Now()
	profile, err := p.next.Create(ctx, input)
	p.record(ctx, "profile_create", start, err)
	return profile, err
}

// Update records metrics for profile updates.
func (p *profileUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	input *profileDomain.UpdateProfileInput,
) (*profileDomain.IssuerProfile, error) {
	start := time.Now()
	profile, err := p.next.Update(ctx, id, input)
	p.record(ctx, "profile_update", start, err)
	return profile, err
}

// Delete records metrics for profile deletion.
func (p *profileUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := p.next.Delete(ctx, id)
	p.record(ctx, "profile_delete", start, err)
	return err
}

// SetDefault records metrics for default changes.
func (p *profileUseCaseWithMetrics) SetDefault(ctx context.Context, id string) error {
	start := time.Now()
	err := p.next.SetDefault(ctx, id)
	p.record(ctx, "profile_set_default", start, err)
	return err
}

// GetDefault records metrics for default profile retrieval.
func (p *profileUseCaseWithMetrics) GetDefault(ctx context.Context) (*profileDomain.IssuerProfile, error) {
	start := time.Now()
	profile, err := p.next.GetDefault(ctx)
	p.record(ctx, "profile_get_default", start, err)
	return profile, err
}

// Get records metrics for profile retrieval.
func (p *profileUseCaseWithMetrics) Get(ctx context.Context, id string) (*profileDomain.IssuerProfile, error) {
	start := time.Now()
	profile, err := p.next.Get(ctx, id)
	p.record(ctx, "profile_get", start, err)
	return profile, err
}

// Export records metrics for backup export.
func (p *profileUseCaseWithMetrics) Export(ctx context.Context) ([]byte, error) {
	start := time.Now()
	data, err := p.next.Export(ctx)
	p.record(ctx, "profile_export", start, err)
	return data, err
}

// Import records metrics for backup import.
func (p *profileUseCaseWithMetrics) Import(ctx context.Context, data []byte) (int, error) {
	start := time.Now()
	count, err := p.next.Import(ctx, data)
	p.record(ctx, "profile_import", start, err)
	return count, err
}
