package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		exposesMessage bool
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "profile not found"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedCode:   "conflict",
		},
		{
			name:           "invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "name: cannot be blank"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_input",
			exposesMessage: true,
		},
		{
			name:           "unsupported format",
			err:            apperrors.Wrap(apperrors.ErrUnsupportedFormat, "profiles must be an array"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "unsupported_format",
			exposesMessage: true,
		},
		{
			name:           "storage",
			err:            apperrors.Wrap(apperrors.ErrStorage, "/var/lib/seikyu: permission denied"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "storage_error",
		},
		{
			name:           "crypto",
			err:            apperrors.Wrap(apperrors.ErrCrypto, "key derivation failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "crypto_error",
		},
		{
			name:           "unknown",
			err:            errors.New("database password is hunter2"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			if tt.exposesMessage {
				assert.Equal(t, tt.err.Error(), resp.Message)
			} else {
				assert.NotContains(t, resp.Message, tt.err.Error())
			}
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "bad_request", resp.Error)
	assert.Equal(t, "unexpected EOF", resp.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("items: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "invalid_input", resp.Error)
}

func TestHandlePayloadTooLargeGin(t *testing.T) {
	c, w := newTestContext()

	HandlePayloadTooLargeGin(c, 1024, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "payload_too_large", resp.Error)
	assert.Equal(t, "request body exceeds 1024 bytes", resp.Message)
}
