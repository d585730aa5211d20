package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

type SettingsHandler struct {
	svc       service.SettingsService
	uploadDir string
}

func NewSettingsHandler(svc service.SettingsService, uploadDir string) *SettingsHandler {
	return &SettingsHandler{svc: svc, uploadDir: uploadDir}
}

// Get returns the settings singleton, creating it with defaults on first read.
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "Settings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update merges the provided fields into the singleton. Accepts multipart
// form data when a logo file is attached.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var logoPath *string
	if file, err := c.FormFile("logo"); err == nil {
		path, err := saveUpload(c, file, h.uploadDir)
		if err != nil {
			log.Warn().Err(err).Msg("failed to save logo")
		} else {
			logoPath = &path
		}
	}

	resp, err := h.svc.Update(c.Request.Context(), req, logoPath)
	if err != nil {
		respondError(c, err, "Settings")
		return
	}
	c.JSON(http.StatusOK, resp)
}
