// Package http provides HTTP handlers for issuer profile management.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/seikyu/internal/httputil"
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
	"github.com/allisson/seikyu/internal/profile/http/dto"
	profileUseCase "github.com/allisson/seikyu/internal/profile/usecase"
)

// defaultMaxImportSize bounds the size of an uploaded backup document.
const defaultMaxImportSize int64 = 10 << 20

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	profileUseCase profileUseCase.ProfileUseCase
	logger         *slog.Logger
	maxImportSize  int64
}

// NewProfileHandler creates a new profile handler with required dependencies.
func NewProfileHandler(profileUseCase profileUseCase.ProfileUseCase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
		maxImportSize:  defaultMaxImportSize,
	}
}

// ListHandler lists all profiles.
// GET /v1/profiles
func (h *ProfileHandler) ListHandler(c *gin.Context) {
	profiles, err := h.profileUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapProfilesToListResponse(profiles))
}

// CreateHandler creates a profile.
// POST /v1/profiles - Returns 201 Created.
func (h *ProfileHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	profile, err := h.profileUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapProfileToResponse(profile))
}

// GetHandler retrieves a profile by id.
// GET /v1/profiles/:id
func (h *ProfileHandler) GetHandler(c *gin.Context) {
	profile, err := h.profileUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapProfileToResponse(profile))
}

// GetDefaultHandler retrieves the default profile.
// GET /v1/profiles/default
func (h *ProfileHandler) GetDefaultHandler(c *gin.Context) {
	profile, err := h.profileUseCase.GetDefault(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapProfileToResponse(profile))
}

// UpdateHandler applies a partial update.
// PUT /v1/profiles/:id
func (h *ProfileHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	profile, err := h.profileUseCase.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapProfileToResponse(profile))
}

// DeleteHandler deletes a profile.
// DELETE /v1/profiles/:id - Returns 204 No Content.
func (h *ProfileHandler) DeleteHandler(c *gin.Context) {
	if err := h.profileUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetDefaultHandler makes a profile the default.
// POST /v1/profiles/:id/default - Returns 204 No Content.
func (h *ProfileHandler) SetDefaultHandler(c *gin.Context) {
	if err := h.profileUseCase.SetDefault(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportHandler downloads the backup document.
// GET /v1/profiles/export
func (h *ProfileHandler) ExportHandler(c *gin.Context) {
	data, err := h.profileUseCase.Export(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	filename := profileDomain.BackupFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ImportHandler replaces every profile with the contents of a backup document. The
// operation is destructive, so the caller must pass confirm=true. Bodies larger than
// 10 MiB are rejected with 413 before anything is changed.
// POST /v1/profiles/import?confirm=true
func (h *ProfileHandler) ImportHandler(c *gin.Context) {
	if c.Query("confirm") != "true" {
		httputil.HandleBadRequestGin(
			c,
			errors.New("import replaces all profiles: repeat the request with confirm=true"),
			h.logger,
		)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImportSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.HandlePayloadTooLargeGin(c, tooLarge.Limit, h.logger)
			return
		}
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	count, err := h.profileUseCase.Import(c.Request.Context(), data)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.ImportProfilesResponse{Imported: count})
}

// RegisterRoutes mounts the profile routes on router.
func (h *ProfileHandler) RegisterRoutes(router gin.IRouter) {
	profiles := router.Group("/profiles")
	{
		profiles.GET("", h.ListHandler)
		profiles.POST("", h.CreateHandler)
		profiles.GET("/default", h.GetDefaultHandler)
		profiles.GET("/export", h.ExportHandler)
		profiles.POST("/import", h.ImportHandler)
		profiles.GET("/:id", h.GetHandler)
		profiles.PUT("/:id", h.UpdateHandler)
		profiles.DELETE("/:id", h.DeleteHandler)
		profiles.POST("/:id/default", h.SetDefaultHandler)
	}
}
