package app

import (
	"fmt"

	invoiceHTTP "github.com/allisson/seikyu/internal/invoice/http"
	invoiceRepository "github.com/allisson/seikyu/internal/invoice/repository"
	invoiceUseCase "github.com/allisson/seikyu/internal/invoice/usecase"
	taxHTTP "github.com/allisson/seikyu/internal/tax/http"
)

// InvoiceRepository returns the repository for the invoice list.
func (c *Container) InvoiceRepository() (*invoiceRepository.InvoiceRepository, error) {
	err := c.initOnce(&c.invoiceRepoInit, "invoiceRepository", func() error {
		store, err := c.StorageService()
		if err != nil {
			return fmt.Errorf("failed to get storage service for invoice repository: %w", err)
		}
		c.invoiceRepository = invoiceRepository.NewInvoiceRepository(store)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.invoiceRepository, nil
}

// CounterRepository returns the repository for the invoice number counter.
func (c *Container) CounterRepository() (*invoiceRepository.CounterRepository, error) {
	err := c.initOnce(&c.counterRepoInit, "counterRepository", func() error {
		store, err := c.StorageService()
		if err != nil {
			return fmt.Errorf("failed to get storage service for counter repository: %w", err)
		}
		c.counterRepository = invoiceRepository.NewCounterRepository(store)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.counterRepository, nil
}

// NumberSequence returns the year-scoped invoice number sequence.
func (c *Container) NumberSequence() (invoiceUseCase.NumberSequence, error) {
	err := c.initOnce(&c.numberSequenceInit, "numberSequence", func() error {
		counters, err := c.CounterRepository()
		if err != nil {
			return fmt.Errorf("failed to get counter repository for number sequence: %w", err)
		}
		c.numberSequence = invoiceUseCase.NewNumberSequence(
			counters,
			c.config.InvoiceNumberPrefix,
			c.config.InvoiceNumberPadding,
			c.Logger(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.numberSequence, nil
}

// InvoiceUseCase returns the invoice use case, wrapped with metrics when enabled.
func (c *Container) InvoiceUseCase() (invoiceUseCase.InvoiceUseCase, error) {
	err := c.initOnce(&c.invoiceUseCaseInit, "invoiceUseCase", func() error {
		var err error
		c.invoiceUseCase, err = c.initInvoiceUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.invoiceUseCase, nil
}

// InvoiceHandler returns the HTTP handler for invoices.
func (c *Container) InvoiceHandler() (*invoiceHTTP.InvoiceHandler, error) {
	err := c.initOnce(&c.invoiceHandlerInit, "invoiceHandler", func() error {
		useCase, err := c.InvoiceUseCase()
		if err != nil {
			return fmt.Errorf("failed to get invoice use case for invoice handler: %w", err)
		}
		c.invoiceHandler = invoiceHTTP.NewInvoiceHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.invoiceHandler, nil
}

// CalculationHandler returns the stateless tax calculation handler.
func (c *Container) CalculationHandler() *taxHTTP.CalculationHandler {
	c.calculationInit.Do(func() {
		c.calculationHandler = taxHTTP.NewCalculationHandler(c.Logger())
	})
	return c.calculationHandler
}

func (c *Container) initInvoiceUseCase() (invoiceUseCase.InvoiceUseCase, error) {
	repo, err := c.InvoiceRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice repository for invoice use case: %w", err)
	}
	sequence, err := c.NumberSequence()
	if err != nil {
		return nil, fmt.Errorf("failed to get number sequence for invoice use case: %w", err)
	}
	profiles, err := c.ProfileUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile use case for invoice use case: %w", err)
	}

	baseUseCase := invoiceUseCase.NewInvoiceUseCase(
		repo,
		sequence,
		profiles,
		c.config.PaymentTermsDays,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for invoice use case: %w", err)
		}
		return invoiceUseCase.NewInvoiceUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
