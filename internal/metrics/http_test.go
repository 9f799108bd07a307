package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("http_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "http_test"))
	router.GET("/v1/profiles/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/v1/calculations", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_input"})
	})

	for _, path := range []string{"/v1/profiles/a", "/v1/profiles/b", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/calculations", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	output := scrape(t, provider)

	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="GET".*path="/v1/profiles/:id".*status_code="200"`, `2`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="GET".*path="unmatched".*status_code="404"`, `1`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="POST".*path="/v1/calculations".*status_code="422"`, `1`)
	assertMetricLine(t, output, `http_test_http_request_duration_seconds_count`,
		`method="GET".*path="/v1/profiles/:id".*status_code="200"`, `2`)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/invoices/:id", routeLabel("/v1/invoices/:id"))
	assert.Equal(t, "/", routeLabel("/"))
	assert.Equal(t, "unmatched", routeLabel(""))
}
