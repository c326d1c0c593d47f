package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockMovement is an immutable ledger entry for material stock. The
// cached Material.StockQty must always equal the signed sum of these
// rows for the material, within a 0.001 tolerance.
type StockMovement struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	MaterialID uuid.UUID         `gorm:"type:uuid;not null;index" json:"material_id"`
	Type       enum.MovementType `gorm:"not null" json:"type"`
	Qty        float64           `gorm:"not null" json:"qty"`
	SupplierID *uuid.UUID        `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	RefOrderID *uuid.UUID        `gorm:"type:uuid;index" json:"ref_order_id,omitempty"`
	Notes      *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`

	// Relationships
	Material Material  `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}

// SignedQty returns the quantity with its direction applied.
func (m *StockMovement) SignedQty() float64 {
	if m.Type == enum.MovementOut {
		return -m.Qty
	}
	return m.Qty
}
