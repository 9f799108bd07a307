package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const localFrontend = "http://localhost:5173"

func TestCreateCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{"disabled", false, localFrontend, true},
		{"enabled without origins", true, "", true},
		{"enabled with only separators", true, " , ,", true},
		{"single origin", true, localFrontend, false},
		{"several origins with whitespace", true, " http://localhost:5173 , http://127.0.0.1:5173 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, discardLogger())
			if tt.wantNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Empty(t, parseOrigins(",,"))
	assert.Equal(t,
		[]string{"http://localhost:5173", "http://127.0.0.1:5173"},
		parseOrigins(" http://localhost:5173/ ,http://127.0.0.1:5173,http://localhost:5173"),
	)
}

func corsRouter(enabled bool) *gin.Engine {
	router := gin.New()
	if middleware := createCORSMiddleware(enabled, localFrontend, discardLogger()); middleware != nil {
		router.Use(middleware)
	}
	router.POST("/v1/calculations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCORSIntegration(t *testing.T) {
	t.Run("HeadersAddedWhenEnabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/calculations", nil)
		req.Header.Set("Origin", localFrontend)
		corsRouter(true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, localFrontend, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("NoHeadersWhenDisabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/calculations", nil)
		req.Header.Set("Origin", localFrontend)
		corsRouter(false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("PreflightHandled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/calculations", nil)
		req.Header.Set("Origin", localFrontend)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		corsRouter(true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, localFrontend, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("ExposesBackupFileName", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/calculations", nil)
		req.Header.Set("Origin", localFrontend)
		corsRouter(true).ServeHTTP(w, req)

		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
	})
}
