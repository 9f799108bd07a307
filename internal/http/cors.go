package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// corsExposedHeaders lets a browser frontend read the request id and the backup
// file name sent by the profile export endpoint.
var corsExposedHeaders = []string{"X-Request-Id", "Content-Disposition"}

// createCORSMiddleware returns a CORS middleware for the configured origins, or nil
// when CORS is disabled or no origin survives parsing.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("cors enabled without any valid origin, middleware not installed",
			slog.String("configured", allowOrigins))
		return nil
	}

	logger.Info("cors enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{"Content-Type", "X-Request-Id"},
		ExposeHeaders: corsExposedHeaders,
		MaxAge:        12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated origin list, trimming entries and dropping
// blanks, trailing slashes and duplicates.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	origins := lo.Map(strings.Split(raw, ","), func(part string, _ int) string {
		return strings.TrimRight(strings.TrimSpace(part), "/")
	})
	return lo.Uniq(lo.Compact(origins))
}
