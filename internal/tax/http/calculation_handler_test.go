package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
	"github.com/allisson/seikyu/internal/tax/http/dto"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	handler := NewCalculationHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/v1"))
	return router
}

func postCalculation(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/calculations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculationHandler_CalculateHandler(t *testing.T) {
	t.Run("Success_Included", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postCalculation(router, `{
			"items": [{"id": "1", "description": "デザイン制作", "quantity": 1, "unitPrice": 30000}],
			"hasWithholding": true,
			"taxMethod": "included"
		}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CalculateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, taxDomain.InvoiceCalculation{
			Subtotal:       30000,
			ConsumptionTax: 3000,
			WithholdingTax: 3369,
			FinalAmount:    29631,
			TaxMethod:      taxDomain.TaxMethodIncluded,
		}, response.Calculation)
		assert.Equal(t, "¥29,631", response.Formatted.FinalAmount)
		assert.Equal(t, int64(30000), response.Items[0].Amount)
	})

	t.Run("Success_DefaultMethod", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postCalculation(router, `{
			"items": [{"description": "作業", "quantity": 1, "unitPrice": 30000, "amount": 1}],
			"hasWithholding": false
		}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CalculateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, taxDomain.TaxMethodIncluded, response.Calculation.TaxMethod)
		assert.Equal(t, int64(33000), response.Calculation.FinalAmount)
		assert.Equal(t, int64(30000), response.Items[0].Amount)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postCalculation(router, `{"items":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NoItems", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postCalculation(router, `{"items": [], "taxMethod": "separate"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response["error"])
	})

	t.Run("Error_AmountsBeyondLimits", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postCalculation(router, `{
			"items": [{"id": "1", "description": "x", "quantity": 4000000000, "unitPrice": 4000000000}],
			"hasWithholding": true,
			"taxMethod": "separate"
		}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NotContains(t, w.Body.String(), "finalAmount")
	})

	t.Run("Error_UnknownMethod", func(t *testing.T) {
		router := setupTestRouter(t)

		w := postCalculation(router, `{
			"items": [{"description": "作業", "quantity": 1, "unitPrice": 100}],
			"taxMethod": "gross"
		}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
