package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prasetia/cetakindo-api/internal/application/service"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetNotaConfig handles getting the invoice numbering configuration
func (h *SettingsHandler) GetNotaConfig(c *gin.Context) {
	cfg, err := h.settingsService.GetNotaConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Nota configuration retrieved successfully", cfg)
}

// UpdateNotaConfig handles updating the invoice numbering configuration
func (h *SettingsHandler) UpdateNotaConfig(c *gin.Context) {
	var req struct {
		Prefix     *string `json:"prefix"`
		LastNumber *string `json:"last_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cfg, err := h.settingsService.UpdateNotaConfig(c.Request.Context(), req.Prefix, req.LastNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Nota configuration updated successfully", cfg)
}

// ListDisplay handles listing all display settings for the admin screen
func (h *SettingsHandler) ListDisplay(c *gin.Context) {
	settings, err := h.settingsService.ListDisplaySettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Display settings retrieved successfully", settings)
}

// PublicDisplay handles the unauthenticated read of enabled display rows
func (h *SettingsHandler) PublicDisplay(c *gin.Context) {
	settings, err := h.settingsService.PublicDisplaySettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Display settings retrieved successfully", settings)
}

// UpsertDisplay handles creating or replacing a display row
func (h *SettingsHandler) UpsertDisplay(c *gin.Context) {
	var req struct {
		Key     string `json:"key" binding:"required"`
		Value   string `json:"value"`
		Enabled *bool  `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	setting := &entity.DisplaySetting{
		Key:     req.Key,
		Value:   req.Value,
		Enabled: true,
	}
	if req.Enabled != nil {
		setting.Enabled = *req.Enabled
	}

	if err := h.settingsService.UpsertDisplaySetting(c.Request.Context(), setting); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Display setting saved successfully", setting)
}
