package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a sample of name whose
// labels match the pattern and whose value starts with value. Extra labels added by the
// exporter are tolerated.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusFromError(nil))
	assert.Equal(t, StatusError, StatusFromError(errors.New("boom")))
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_Export(t *testing.T) {
	provider, err := NewProvider("seikyu_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "seikyu_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "profiles", "profile_create", StatusSuccess)
	bm.RecordOperation(ctx, "profiles", "profile_create", StatusSuccess)
	bm.RecordOperation(ctx, "profiles", "profile_create", StatusError)
	bm.RecordOperation(ctx, "invoices", "invoice_create", StatusSuccess)
	bm.RecordDuration(ctx, "profiles", "profile_create", 50*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "profiles", "profile_create", 70*time.Millisecond, StatusSuccess)

	output := scrape(t, provider)

	assertMetricLine(t, output, `seikyu_test_operations_total`,
		`domain="profiles".*operation="profile_create".*status="success"`, `2`)
	assertMetricLine(t, output, `seikyu_test_operations_total`,
		`domain="profiles".*operation="profile_create".*status="error"`, `1`)
	assertMetricLine(t, output, `seikyu_test_operations_total`,
		`domain="invoices".*operation="invoice_create".*status="success"`, `1`)
	assertMetricLine(t, output, `seikyu_test_operation_duration_seconds_count`,
		`domain="profiles".*operation="profile_create".*status="success"`, `2`)
}

func TestObserve(t *testing.T) {
	provider, err := NewProvider("observe_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "observe_test")
	require.NoError(t, err)

	ctx := context.Background()
	Observe(ctx, bm, "invoices", "invoice_delete", time.Now(), nil)
	Observe(ctx, bm, "invoices", "invoice_delete", time.Now(), errors.New("not found"))

	output := scrape(t, provider)

	assertMetricLine(t, output, `observe_test_operations_total`,
		`domain="invoices".*operation="invoice_delete".*status="success"`, `1`)
	assertMetricLine(t, output, `observe_test_operations_total`,
		`domain="invoices".*operation="invoice_delete".*status="error"`, `1`)
	assertMetricLine(t, output, `observe_test_operation_duration_seconds_count`,
		`domain="invoices".*operation="invoice_delete".*status="error"`, `1`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)
	assert.NotPanics(t, func() {
		noOpMetrics.RecordOperation(context.Background(), "profiles", "profile_list", StatusSuccess)
		noOpMetrics.RecordDuration(context.Background(), "invoices", "invoice_list", time.Millisecond, StatusError)
		Observe(context.Background(), noOpMetrics, "profiles", "profile_get", time.Now(), nil)
	})
}
