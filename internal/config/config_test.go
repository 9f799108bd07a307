package config

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/seikyu/internal/crypto/domain"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "127.0.0.1", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.Equal(t, "file", cfg.StorageDriver)
				assert.NotEmpty(t, cfg.StorageDir)
				assert.Equal(t, 5, cfg.DBMaxOpenConnections)
				assert.Equal(t, 2, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "aes-gcm", cfg.CipherAlgorithm)
				assert.Contains(t, cfg.FingerprintUserAgent, "seikyu/"+Version)
				assert.Contains(t, cfg.FingerprintUserAgent, runtime.GOOS)
				assert.Equal(t, "ja-JP", cfg.FingerprintLocale)
				assert.Equal(t, 1920, cfg.FingerprintDisplayWidth)
				assert.Equal(t, "", cfg.InvoiceNumberPrefix)
				assert.Equal(t, 3, cfg.InvoiceNumberPadding)
				assert.Equal(t, 30, cfg.PaymentTermsDays)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 10.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 20, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "seikyu", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST":              "localhost",
				"SERVER_PORT":              "9090",
				"SHUTDOWN_TIMEOUT_SECONDS": "3",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
			},
		},
		{
			name: "load custom storage configuration",
			envVars: map[string]string{
				"STORAGE_DRIVER":          "mysql",
				"STORAGE_DIR":             "/var/lib/seikyu",
				"DB_CONNECTION_STRING":    "user:password@tcp(localhost:3306)/seikyu",
				"DB_MAX_OPEN_CONNECTIONS": "50",
				"DB_MAX_IDLE_CONNECTIONS": "10",
				"DB_CONN_MAX_LIFETIME":    "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.StorageDriver)
				assert.Equal(t, "/var/lib/seikyu", cfg.StorageDir)
				assert.Equal(t, "user:password@tcp(localhost:3306)/seikyu", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load custom fingerprint",
			envVars: map[string]string{
				"FINGERPRINT_USER_AGENT":    "Mozilla/5.0",
				"FINGERPRINT_LOCALE":        "en-US",
				"FINGERPRINT_DISPLAY_WIDTH": "2560",
				"CIPHER_ALGORITHM":          "chacha20-poly1305",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, cryptoDomain.Fingerprint{
					UserAgent:    "Mozilla/5.0",
					Locale:       "en-US",
					DisplayWidth: 2560,
				}, cfg.Fingerprint())
				assert.Equal(t, "chacha20-poly1305", cfg.CipherAlgorithm)
			},
		},
		{
			name: "locale derived from LANG",
			envVars: map[string]string{
				"LANG": "en_GB.UTF-8",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "en-GB", cfg.FingerprintLocale)
			},
		},
		{
			name: "load custom invoice configuration",
			envVars: map[string]string{
				"INVOICE_NUMBER_PREFIX":  "INV-",
				"INVOICE_NUMBER_PADDING": "5",
				"PAYMENT_TERMS_DAYS":     "60",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "INV-", cfg.InvoiceNumberPrefix)
				assert.Equal(t, 5, cfg.InvoiceNumberPadding)
				assert.Equal(t, 60, cfg.PaymentTermsDays)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "debug", cfg.GetGinMode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:           8080,
			StorageDriver:        "file",
			StorageDir:           "/tmp/seikyu",
			LogLevel:             "info",
			CipherAlgorithm:      "aes-gcm",
			InvoiceNumberPadding: 3,
			PaymentTermsDays:     30,
			MetricsEnabled:       true,
			MetricsPort:          8081,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"memory needs no dir", func(c *Config) { c.StorageDriver = "memory"; c.StorageDir = "" }, false},
		{"unknown driver", func(c *Config) { c.StorageDriver = "redis" }, true},
		{"file without dir", func(c *Config) { c.StorageDir = "" }, true},
		{"sql without connection string", func(c *Config) { c.StorageDriver = "postgres" }, true},
		{"unknown algorithm", func(c *Config) { c.CipherAlgorithm = "des" }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"zero padding", func(c *Config) { c.InvoiceNumberPadding = 0 }, true},
		{"negative payment terms", func(c *Config) { c.PaymentTermsDays = -1 }, true},
		{"port out of range", func(c *Config) { c.ServerPort = 70000 }, true},
		{"metrics port ignored when disabled", func(c *Config) {
			c.MetricsEnabled = false
			c.MetricsPort = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
