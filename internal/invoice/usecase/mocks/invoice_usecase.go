// Package mocks provides testify mocks for the invoice use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// MockInvoiceUseCase is a mock implementation of usecase.InvoiceUseCase.
type MockInvoiceUseCase struct {
	mock.Mock
}

// NewMockInvoiceUseCase creates a mock whose expectations are asserted on test cleanup.
func NewMockInvoiceUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvoiceUseCase {
	m := &MockInvoiceUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func recordOrNil(v any) *invoiceDomain.InvoiceRecord {
	if v == nil {
		return nil
	}
	return v.(*invoiceDomain.InvoiceRecord)
}

func (m *MockInvoiceUseCase) Create(
	ctx context.Context,
	issuer profileDomain.IssuerProfile,
	input *invoiceDomain.CreateInvoiceInput,
) (*invoiceDomain.InvoiceRecord, error) {
	args := m.Called(ctx, issuer, input)
	return recordOrNil(args.Get(0)), args.Error(1)
}

func (m *MockInvoiceUseCase) CreateForProfile(
	ctx context.Context,
	profileID string,
	input *invoiceDomain.CreateInvoiceInput,
) (*invoiceDomain.InvoiceRecord, error) {
	args := m.Called(ctx, profileID, input)
	return recordOrNil(args.Get(0)), args.Error(1)
}

func (m *MockInvoiceUseCase) List(
	ctx context.Context,
	filter invoiceDomain.InvoiceFilter,
) ([]invoiceDomain.InvoiceSummary, error) {
	args := m.Called(ctx, filter)
	summaries, _ := args.Get(0).([]invoiceDomain.InvoiceSummary)
	return summaries, args.Error(1)
}

func (m *MockInvoiceUseCase) Get(ctx context.Context, id string) (*invoiceDomain.InvoiceRecord, error) {
	args := m.Called(ctx, id)
	return recordOrNil(args.Get(0)), args.Error(1)
}

func (m *MockInvoiceUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceUseCase) NextNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
