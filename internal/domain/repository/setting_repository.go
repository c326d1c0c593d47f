package repository

import (
	"context"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
)

// SettingRepository defines the interface for key-value settings,
// including the persisted nota counter.
type SettingRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	// NextNota atomically increments the persisted nota counter and
	// returns the formatted invoice number (prefix-joined, zero-padded to
	// the width of the previously stored value).
	NextNota(ctx context.Context) (string, error)
}

// DisplaySettingRepository defines the interface for the public display
// screen configuration rows.
type DisplaySettingRepository interface {
	List(ctx context.Context) ([]entity.DisplaySetting, error)
	ListEnabled(ctx context.Context) ([]entity.DisplaySetting, error)
	Upsert(ctx context.Context, setting *entity.DisplaySetting) error
}
