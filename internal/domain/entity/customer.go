package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a buyer. The Level decides which material price
// column applies when an order total is computed.
type Customer struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Phone     *string            `gorm:"size:50" json:"phone,omitempty"`
	Address   *string            `gorm:"type:text" json:"address,omitempty"`
	Level     enum.CustomerLevel `gorm:"default:0" json:"level"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
