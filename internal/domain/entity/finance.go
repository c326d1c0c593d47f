package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bank represents a bank account used for non-cash payments.
type Bank struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	AccountName   *string        `gorm:"size:255" json:"account_name,omitempty"`
	AccountNumber *string        `gorm:"size:100" json:"account_number,omitempty"`
	Balance       float64        `gorm:"default:0" json:"balance"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bank
func (b *Bank) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bank model
func (Bank) TableName() string {
	return "banks"
}

// Asset represents something of value the business owns.
type Asset struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Value      float64        `gorm:"default:0" json:"value"`
	AcquiredAt *time.Time     `json:"acquired_at,omitempty"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new asset
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// Debt represents money the business owes.
type Debt struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreditorName string         `gorm:"size:255;not null" json:"creditor_name"`
	Amount       float64        `gorm:"not null" json:"amount"`
	DueDate      *time.Time     `json:"due_date,omitempty"`
	Paid         bool           `gorm:"default:false" json:"paid"`
	Notes        *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new debt
func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Debt model
func (Debt) TableName() string {
	return "debts"
}
