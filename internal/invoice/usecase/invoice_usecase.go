package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	apperrors "github.com/allisson/seikyu/internal/errors"
	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	taxService "github.com/allisson/seikyu/internal/tax/service"
	"github.com/allisson/seikyu/internal/validation"
)

// invoiceUseCase implements InvoiceUseCase. Every operation holds mu for its whole
// read-modify-write cycle.
type invoiceUseCase struct {
	mu               sync.Mutex
	repo             InvoiceRepository
	sequence         NumberSequence
	profiles         ProfileResolver
	paymentTermsDays int
	logger           *slog.Logger
	now              func() time.Time
}

// NewInvoiceUseCase creates a new InvoiceUseCase. paymentTermsDays is the gap between
// the issue date and the default due date.
func NewInvoiceUseCase(
	repo InvoiceRepository,
	sequence NumberSequence,
	profiles ProfileResolver,
	paymentTermsDays int,
	logger *slog.Logger,
) InvoiceUseCase {
	return newInvoiceUseCase(repo, sequence, profiles, paymentTermsDays, logger, time.Now)
}

func newInvoiceUseCase(
	repo InvoiceRepository,
	sequence NumberSequence,
	profiles ProfileResolver,
	paymentTermsDays int,
	logger *slog.Logger,
	now func() time.Time,
) *invoiceUseCase {
	if paymentTermsDays < 0 {
		paymentTermsDays = invoiceDomain.DefaultPaymentTermsDays
	}
	return &invoiceUseCase{
		repo:             repo,
		sequence:         sequence,
		profiles:         profiles,
		paymentTermsDays: paymentTermsDays,
		logger:           logger,
		now:              now,
	}
}

// loadForUpdate reads the list before a write. Undecodable data is replaced by an empty
// list; storage failures are returned so nothing is overwritten blindly.
func (i *invoiceUseCase) loadForUpdate(ctx context.Context) ([]invoiceDomain.InvoiceRecord, error) {
	invoices, err := i.repo.List(ctx)
	if err == nil {
		return invoices, nil
	}
	if apperrors.Is(err, apperrors.ErrUnsupportedFormat) {
		i.logger.Warn("invoice data unreadable, starting from an empty list", slog.Any("error", err))
		return []invoiceDomain.InvoiceRecord{}, nil
	}
	return nil, err
}

// Create issues a new invoice for issuer.
func (i *invoiceUseCase) Create(
	ctx context.Context,
	issuer profileDomain.IssuerProfile,
	input *invoiceDomain.CreateInvoiceInput,
) (*invoiceDomain.InvoiceRecord, error) {
	in := *input
	in.ApplyDefaults(i.now(), i.paymentTermsDays)
	if err := in.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	invoices, err := i.loadForUpdate(ctx)
	if err != nil {
		return nil, err
	}

	number, err := i.sequence.Next(ctx)
	if err != nil {
		return nil, err
	}

	items := taxService.WithAmounts(in.Items)
	for idx := range items {
		if items[idx].ID == "" {
			items[idx].ID = uuid.Must(uuid.NewV7()).String()
		}
	}

	now := i.now().UTC()
	record := invoiceDomain.InvoiceRecord{
		ID:             uuid.Must(uuid.NewV7()).String(),
		InvoiceNumber:  number,
		IssueDate:      in.IssueDate,
		DueDate:        in.DueDate,
		Issuer:         issuer,
		Client:         in.Client,
		Items:          items,
		Calculation:    taxService.Calculate(items, in.HasWithholding, in.TaxMethod),
		HasWithholding: in.HasWithholding,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := i.repo.SaveAll(ctx, append(invoices, record)); err != nil {
		return nil, err
	}

	i.logger.Info("invoice created",
		slog.String("invoice_id", record.ID),
		slog.String("invoice_number", record.InvoiceNumber),
		slog.String("profile_id", issuer.ID),
		slog.Int64("final_amount", record.Calculation.FinalAmount),
	)
	return &record, nil
}

// CreateForProfile resolves the issuer and creates the invoice.
func (i *invoiceUseCase) CreateForProfile(
	ctx context.Context,
	profileID string,
	input *invoiceDomain.CreateInvoiceInput,
) (*invoiceDomain.InvoiceRecord, error) {
	var (
		issuer *profileDomain.IssuerProfile
		err    error
	)
	if profileID == "" {
		issuer, err = i.profiles.GetDefault(ctx)
	} else {
		issuer, err = i.profiles.Get(ctx, profileID)
	}
	if err != nil {
		return nil, err
	}
	return i.Create(ctx, *issuer, input)
}

// List returns invoice summaries matching filter. Unreadable data yields an empty list.
func (i *invoiceUseCase) List(
	ctx context.Context,
	filter invoiceDomain.InvoiceFilter,
) ([]invoiceDomain.InvoiceSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	invoices, err := i.repo.List(ctx)
	if err != nil {
		i.logger.Error("failed to read invoices", slog.Any("error", err))
		return []invoiceDomain.InvoiceSummary{}, nil
	}

	matching := lo.Filter(invoices, func(r invoiceDomain.InvoiceRecord, _ int) bool {
		return filter.Matches(&r)
	})
	return lo.Map(matching, func(r invoiceDomain.InvoiceRecord, _ int) invoiceDomain.InvoiceSummary {
		return r.Summary()
	}), nil
}

// Get returns the invoice with id.
func (i *invoiceUseCase) Get(ctx context.Context, id string) (*invoiceDomain.InvoiceRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	invoices, err := i.repo.List(ctx)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnsupportedFormat) {
			return nil, invoiceDomain.ErrInvoiceNotFound
		}
		return nil, err
	}

	record, ok := lo.Find(invoices, func(r invoiceDomain.InvoiceRecord) bool {
		return r.ID == id
	})
	if !ok {
		return nil, invoiceDomain.ErrInvoiceNotFound
	}
	return &record, nil
}

// Delete removes the invoice with id.
func (i *invoiceUseCase) Delete(ctx context.Context, id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	invoices, err := i.loadForUpdate(ctx)
	if err != nil {
		return err
	}

	index := slices.IndexFunc(invoices, func(r invoiceDomain.InvoiceRecord) bool {
		return r.ID == id
	})
	if index < 0 {
		return invoiceDomain.ErrInvoiceNotFound
	}

	if err := i.repo.SaveAll(ctx, slices.Delete(invoices, index, index+1)); err != nil {
		return err
	}

	i.logger.Info("invoice deleted", slog.String("invoice_id", id))
	return nil
}

// NextNumber previews the next invoice number.
func (i *invoiceUseCase) NextNumber(ctx context.Context) (string, error) {
	return i.sequence.Peek(ctx)
}
