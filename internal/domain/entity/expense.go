package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense represents an operating expense entry.
type Expense struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      float64        `gorm:"not null" json:"amount"`
	Category    *string        `gorm:"size:100" json:"category,omitempty"`
	SpentAt     time.Time      `gorm:"not null" json:"spent_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
