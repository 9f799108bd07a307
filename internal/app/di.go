// Package app provides the dependency injection container that assembles the application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/seikyu/internal/config"
	cryptoService "github.com/allisson/seikyu/internal/crypto/service"
	"github.com/allisson/seikyu/internal/database"
	"github.com/allisson/seikyu/internal/http"
	invoiceHTTP "github.com/allisson/seikyu/internal/invoice/http"
	invoiceRepository "github.com/allisson/seikyu/internal/invoice/repository"
	invoiceUseCase "github.com/allisson/seikyu/internal/invoice/usecase"
	"github.com/allisson/seikyu/internal/metrics"
	profileHTTP "github.com/allisson/seikyu/internal/profile/http"
	profileRepository "github.com/allisson/seikyu/internal/profile/repository"
	profileUseCase "github.com/allisson/seikyu/internal/profile/usecase"
	"github.com/allisson/seikyu/internal/storage"
	taxHTTP "github.com/allisson/seikyu/internal/tax/http"
)

// Container holds all application dependencies. Components are created on first access
// and cached; a failed initialization is cached as well.
type Container struct {
	config *config.Config

	// Lifetime of background goroutines started by components.
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	storageAdapter  storage.Adapter
	storageService  *storage.Service
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Crypto
	keyProvider    cryptoService.KeyProvider
	envelopeCipher cryptoService.Sealer

	// Profiles
	profileRepository *profileRepository.ProfileRepository
	profileUseCase    profileUseCase.ProfileUseCase
	profileHandler    *profileHTTP.ProfileHandler

	// Invoices
	invoiceRepository *invoiceRepository.InvoiceRepository
	counterRepository *invoiceRepository.CounterRepository
	numberSequence    invoiceUseCase.NumberSequence
	invoiceUseCase    invoiceUseCase.InvoiceUseCase
	invoiceHandler    *invoiceHTTP.InvoiceHandler

	// Tax
	calculationHandler *taxHTTP.CalculationHandler

	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	storageAdapterInit  sync.Once
	storageServiceInit  sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	keyProviderInit     sync.Once
	envelopeCipherInit  sync.Once
	profileRepoInit     sync.Once
	profileUseCaseInit  sync.Once
	profileHandlerInit  sync.Once
	invoiceRepoInit     sync.Once
	counterRepoInit     sync.Once
	numberSequenceInit  sync.Once
	invoiceUseCaseInit  sync.Once
	invoiceHandlerInit  sync.Once
	calculationInit     sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger on stdout, leveled by the configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// SetLogger replaces the logger before first use. CLI commands use it to log to stderr.
func (c *Container) SetLogger(logger *slog.Logger) {
	c.loggerInit.Do(func() {
		c.logger = logger
	})
}

// initOnce runs init at most once and caches its error under name.
func (c *Container) initOnce(once *sync.Once, name string, init func() error) error {
	once.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[name] = err
			c.mu.Unlock()
		}
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// DB returns the database connection used by the SQL storage drivers.
func (c *Container) DB() (*sql.DB, error) {
	err := c.initOnce(&c.dbInit, "db", func() error {
		var err error
		c.db, err = c.initDB()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.db, nil
}

// StorageAdapter returns the key/value backend selected by STORAGE_DRIVER.
func (c *Container) StorageAdapter() (storage.Adapter, error) {
	err := c.initOnce(&c.storageAdapterInit, "storageAdapter", func() error {
		var err error
		c.storageAdapter, err = c.initStorageAdapter()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.storageAdapter, nil
}

// StorageService returns the JSON helper over the storage adapter.
func (c *Container) StorageService() (*storage.Service, error) {
	err := c.initOnce(&c.storageServiceInit, "storageService", func() error {
		adapter, err := c.StorageAdapter()
		if err != nil {
			return fmt.Errorf("failed to get storage adapter for storage service: %w", err)
		}
		c.storageService = storage.NewService(adapter)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.storageService, nil
}

// MetricsProvider returns the Prometheus-backed provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.initOnce(&c.metricsProviderInit, "metricsProvider", func() error {
		if !c.config.MetricsEnabled {
			return nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the operation recorder; a no-op one when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.initOnce(&c.businessMetricsInit, "businessMetrics", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}
		c.businessMetrics, err = metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	err := c.initOnce(&c.httpServerInit, "httpServer", func() error {
		var err error
		c.httpServer, err = c.initHTTPServer()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.initOnce(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown stops the servers and releases storage, database and metrics resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.storageAdapter != nil {
		if err := c.storageAdapter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}

// initLogger creates a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	return NewLogger(os.Stdout, c.config.LogLevel)
}

func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(c.ctx, database.Config{
		Driver:             c.config.StorageDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initStorageAdapter opens the database only for the SQL drivers.
func (c *Container) initStorageAdapter() (storage.Adapter, error) {
	var db *sql.DB
	if storage.IsSQLDriver(c.config.StorageDriver) {
		var err error
		db, err = c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for storage: %w", err)
		}
	}

	adapter, err := storage.NewAdapter(c.config.StorageDriver, c.config.StorageDir, db)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return adapter, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	adapter, err := c.StorageAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to get storage adapter for http server: %w", err)
	}
	profileHandler, err := c.ProfileHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile handler for http server: %w", err)
	}
	invoiceHandler, err := c.InvoiceHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice handler for http server: %w", err)
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(adapter, c.config.ServerHost, c.config.ServerPort, c.Logger())

	var meterProvider metric.MeterProvider
	if provider != nil {
		meterProvider = provider.MeterProvider()
	}
	server.SetupRouter(
		c.ctx,
		c.config,
		profileHandler,
		invoiceHandler,
		c.CalculationHandler(),
		meterProvider,
		c.config.MetricsNamespace,
	)

	return server, nil
}

// NewLogger returns a JSON logger writing to w at the named level (default info).
func NewLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
