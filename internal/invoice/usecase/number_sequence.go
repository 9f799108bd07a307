package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	apperrors "github.com/allisson/seikyu/internal/errors"
	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
)

// numberSequence implements NumberSequence on top of a CounterRepository.
type numberSequence struct {
	mu     sync.Mutex
	repo   CounterRepository
	prefix string
	width  int
	logger *slog.Logger
	now    func() time.Time
}

// NewNumberSequence creates a sequence formatting numbers as <prefix><year>-<number>
// with number zero-padded to width digits.
func NewNumberSequence(repo CounterRepository, prefix string, width int, logger *slog.Logger) NumberSequence {
	return newNumberSequence(repo, prefix, width, logger, time.Now)
}

func newNumberSequence(
	repo CounterRepository,
	prefix string,
	width int,
	logger *slog.Logger,
	now func() time.Time,
) *numberSequence {
	if width <= 0 {
		width = invoiceDomain.DefaultNumberPadding
	}
	return &numberSequence{
		repo:   repo,
		prefix: prefix,
		width:  width,
		logger: logger,
		now:    now,
	}
}

// current returns the counter that applies now: the stored one, or {year, 1} when
// nothing usable is stored or the year has changed.
func (s *numberSequence) current(ctx context.Context) (invoiceDomain.InvoiceCounter, error) {
	year := s.now().Year()
	fresh := invoiceDomain.InvoiceCounter{Year: year, Number: 1}

	counter, found, err := s.repo.Get(ctx)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrUnsupportedFormat) {
			return invoiceDomain.InvoiceCounter{}, err
		}
		s.logger.Warn("invoice counter unreadable, restarting sequence", slog.Any("error", err))
		return fresh, nil
	}
	if !found || counter.Year != year || counter.Number < 1 {
		return fresh, nil
	}
	return counter, nil
}

// Next issues a number and advances the stored counter.
func (s *numberSequence) Next(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, err := s.current(ctx)
	if err != nil {
		return "", err
	}

	number := invoiceDomain.FormatInvoiceNumber(s.prefix, counter.Year, counter.Number, s.width)
	counter.Number++
	if err := s.repo.Save(ctx, counter); err != nil {
		return "", err
	}
	return number, nil
}

// Peek previews the next number.
func (s *numberSequence) Peek(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, err := s.current(ctx)
	if err != nil {
		return "", err
	}
	return invoiceDomain.FormatInvoiceNumber(s.prefix, counter.Year, counter.Number, s.width), nil
}
