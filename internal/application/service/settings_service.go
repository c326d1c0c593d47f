package service

import (
	"context"
	"strconv"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
)

// SettingsService manages the key-value settings and the public display
// configuration.
type SettingsService struct {
	settingRepo repository.SettingRepository
	displayRepo repository.DisplaySettingRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingRepo repository.SettingRepository, displayRepo repository.DisplaySettingRepository) *SettingsService {
	return &SettingsService{settingRepo: settingRepo, displayRepo: displayRepo}
}

// NotaConfig holds the invoice numbering configuration
type NotaConfig struct {
	Prefix     string `json:"prefix"`
	LastNumber string `json:"last_number"`
}

// GetNotaConfig returns the current invoice numbering configuration
func (s *SettingsService) GetNotaConfig(ctx context.Context) (*NotaConfig, error) {
	prefix, err := s.settingRepo.GetValue(ctx, entity.SettingNotaPrefix)
	if err != nil {
		return nil, err
	}
	last, err := s.settingRepo.GetValue(ctx, entity.SettingNotaLastNumber)
	if err != nil {
		return nil, err
	}
	return &NotaConfig{Prefix: prefix, LastNumber: last}, nil
}

// UpdateNotaConfig stores a new prefix and/or counter value. The counter
// is stored as the string given: its length sets the padding width of
// every number issued after it.
func (s *SettingsService) UpdateNotaConfig(ctx context.Context, prefix, lastNumber *string) (*NotaConfig, error) {
	if prefix != nil {
		if *prefix == "" {
			return nil, apperror.NewBadRequestError("Nota prefix cannot be empty")
		}
		if err := s.settingRepo.SetValue(ctx, entity.SettingNotaPrefix, *prefix); err != nil {
			return nil, err
		}
	}
	if lastNumber != nil {
		if _, err := strconv.Atoi(*lastNumber); err != nil {
			return nil, apperror.NewBadRequestError("Nota counter must be numeric")
		}
		if err := s.settingRepo.SetValue(ctx, entity.SettingNotaLastNumber, *lastNumber); err != nil {
			return nil, err
		}
	}
	return s.GetNotaConfig(ctx)
}

// GetValue reads one setting by key
func (s *SettingsService) GetValue(ctx context.Context, key string) (string, error) {
	return s.settingRepo.GetValue(ctx, key)
}

// SetValue writes one setting by key
func (s *SettingsService) SetValue(ctx context.Context, key, value string) error {
	if key == "" {
		return apperror.NewBadRequestError("Setting key cannot be empty")
	}
	return s.settingRepo.SetValue(ctx, key, value)
}

// ListDisplaySettings returns all display rows for the admin screen
func (s *SettingsService) ListDisplaySettings(ctx context.Context) ([]entity.DisplaySetting, error) {
	return s.displayRepo.List(ctx)
}

// PublicDisplaySettings returns only enabled rows, served without auth
// to the shop's customer-facing screen.
func (s *SettingsService) PublicDisplaySettings(ctx context.Context) ([]entity.DisplaySetting, error) {
	return s.displayRepo.ListEnabled(ctx)
}

// UpsertDisplaySetting creates or replaces a display row by key
func (s *SettingsService) UpsertDisplaySetting(ctx context.Context, setting *entity.DisplaySetting) error {
	if setting.Key == "" {
		return apperror.NewBadRequestError("Display setting key cannot be empty")
	}
	return s.displayRepo.Upsert(ctx, setting)
}
