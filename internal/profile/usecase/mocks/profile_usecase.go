// Package mocks provides testify mocks for the profile use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// MockProfileUseCase is a mock implementation of usecase.ProfileUseCase.
type MockProfileUseCase struct {
	mock.Mock
}

// NewMockProfileUseCase creates a mock whose expectations are asserted on test cleanup.
func NewMockProfileUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUseCase {
	m := &MockProfileUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func profileOrNil(v any) *profileDomain.IssuerProfile {
	if v == nil {
		return nil
	}
	return v.(*profileDomain.IssuerProfile)
}

func (m *MockProfileUseCase) List(ctx context.Context) ([]profileDomain.IssuerProfile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]profileDomain.IssuerProfile)
	return profiles, args.Error(1)
}

func (m *MockProfileUseCase) SaveAll(ctx context.Context, profiles []profileDomain.IssuerProfile) error {
	args := m.Called(ctx, profiles)
	return args.Error(0)
}

func (m *MockProfileUseCase) Create(
	ctx context.Context,
	input *profileDomain.CreateProfileInput,
) (*profileDomain.IssuerProfile, error) {
	args := m.Called(ctx, input)
	return profileOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProfileUseCase) Update(
	ctx context.Context,
	id string,
	input *profileDomain.UpdateProfileInput,
) (*profileDomain.IssuerProfile, error) {
	args := m.Called(ctx, id, input)
	return profileOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProfileUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileUseCase) SetDefault(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileUseCase) GetDefault(ctx context.Context) (*profileDomain.IssuerProfile, error) {
	args := m.Called(ctx)
	return profileOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProfileUseCase) Get(ctx context.Context, id string) (*profileDomain.IssuerProfile, error) {
	args := m.Called(ctx, id)
	return profileOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProfileUseCase) Export(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockProfileUseCase) Import(ctx context.Context, data []byte) (int, error) {
	args := m.Called(ctx, data)
	return args.Int(0), args.Error(1)
}
