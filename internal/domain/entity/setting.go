package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting keys used by the application.
const (
	SettingNotaPrefix     = "nota_prefix"
	SettingNotaLastNumber = "nota_last_number"
)

// Setting is a key-value configuration row. The nota counter lives here:
// nota_prefix holds the invoice prefix and nota_last_number the last issued
// number as a string, whose length also defines the zero-padding width.
type Setting struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key       string    `gorm:"size:100;unique;not null" json:"key"`
	Value     string    `gorm:"size:255;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new setting
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// DisplaySetting is a configuration row for the public display screen
// (running text, promo image, opening hours). Readable without auth.
type DisplaySetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key       string    `gorm:"size:100;unique;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	// No column default: gorm would skip a false value on insert and the
	// row could never be stored disabled. Callers default this instead.
	Enabled bool `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new display setting
func (s *DisplaySetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DisplaySetting model
func (DisplaySetting) TableName() string {
	return "display_settings"
}
