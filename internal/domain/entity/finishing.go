package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Finishing represents a post-processing option that adds a fixed extra
// length and width to an item's footprint when material consumption is
// computed (e.g. eyelets, hemmed edges).
type Finishing struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	ExtraLength float64        `gorm:"default:0" json:"extra_length"`
	ExtraWidth  float64        `gorm:"default:0" json:"extra_width"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new finishing
func (f *Finishing) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Finishing model
func (Finishing) TableName() string {
	return "finishings"
}
