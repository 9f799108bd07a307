package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/seikyu/internal/metrics"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	profileUsecaseMocks "github.com/allisson/seikyu/internal/profile/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectMetrics(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "profiles", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "profiles", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewProfileUseCaseWithMetrics(t *testing.T) {
	decorator := NewProfileUseCaseWithMetrics(profileUsecaseMocks.NewMockProfileUseCase(t), &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*ProfileUseCase)(nil), decorator)
}

func TestProfileMetricsDecorator(t *testing.T) {
	ctx := context.Background()
	profile := &profileDomain.IssuerProfile{ID: "p1"}
	failure := errors.New("boom")

	tests := []struct {
		name      string
		operation string
		setup     func(m *profileUsecaseMocks.MockProfileUseCase, err error)
		call      func(uc ProfileUseCase) error
	}{
		{
			name:      "List",
			operation: "profile_list",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("List", ctx).Return([]profileDomain.IssuerProfile{*profile}, err).Once()
			},
			call: func(uc ProfileUseCase) error { _, err := uc.List(ctx); return err },
		},
		{
			name:      "SaveAll",
			operation: "profile_save_all",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("SaveAll", ctx, mock.Anything).Return(err).Once()
			},
			call: func(uc ProfileUseCase) error { return uc.SaveAll(ctx, nil) },
		},
		{
			name:      "Create",
			operation: "profile_create",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("Create", ctx, mock.Anything).Return(profile, err).Once()
			},
			call: func(uc ProfileUseCase) error {
				_, err := uc.Create(ctx, &profileDomain.CreateProfileInput{})
				return err
			},
		},
		{
			name:      "Update",
			operation: "profile_update",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("Update", ctx, "p1", mock.Anything).Return(profile, err).Once()
			},
			call: func(uc ProfileUseCase) error {
				_, err := uc.Update(ctx, "p1", &profileDomain.UpdateProfileInput{})
				return err
			},
		},
		{
			name:      "Delete",
			operation: "profile_delete",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("Delete", ctx, "p1").Return(err).Once()
			},
			call: func(uc ProfileUseCase) error { return uc.Delete(ctx, "p1") },
		},
		{
			name:      "SetDefault",
			operation: "profile_set_default",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("SetDefault", ctx, "p1").Return(err).Once()
			},
			call: func(uc ProfileUseCase) error { return uc.SetDefault(ctx, "p1") },
		},
		{
			name:      "GetDefault",
			operation: "profile_get_default",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("GetDefault", ctx).Return(profile, err).Once()
			},
			call: func(uc ProfileUseCase) error { _, err := uc.GetDefault(ctx); return err },
		},
		{
			name:      "Get",
			operation: "profile_get",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("Get", ctx, "p1").Return(profile, err).Once()
			},
			call: func(uc ProfileUseCase) error { _, err := uc.Get(ctx, "p1"); return err },
		},
		{
			name:      "Export",
			operation: "profile_export",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("Export", ctx).Return([]byte(`{}`), err).Once()
			},
			call: func(uc ProfileUseCase) error { _, err := uc.Export(ctx); return err },
		},
		{
			name:      "Import",
			operation: "profile_import",
			setup: func(m *profileUsecaseMocks.MockProfileUseCase, err error) {
				m.On("Import", ctx, []byte(`{}`)).Return(1, err).Once()
			},
			call: func(uc ProfileUseCase) error { _, err := uc.Import(ctx, []byte(`{}`)); return err },
		},
	}

	for _, tt := range tests {
		for _, status := range []string{"success", "error"} {
			t.Run(tt.name+"_"+status, func(t *testing.T) {
				var err error
				if status == "error" {
					err = failure
				}

				mockUseCase := profileUsecaseMocks.NewMockProfileUseCase(t)
				mockMetrics := &mockBusinessMetrics{}
				tt.setup(mockUseCase, err)
				expectMetrics(mockMetrics, ctx, tt.operation, status)

				decorator := NewProfileUseCaseWithMetrics(mockUseCase, mockMetrics)
				gotErr := tt.call(decorator)

				assert.Equal(t, err, gotErr)
				mockMetrics.AssertExpectations(t)
			})
		}
	}
}
