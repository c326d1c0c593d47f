package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Material represents a printing substrate ("bahan") tracked by area-based
// stock. It carries one unit price per customer tier. StockQty is only ever
// written through stock movements, never directly by business logic.
type Material struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Unit             string         `gorm:"size:50;default:'m2'" json:"unit"`
	PriceEndCustomer float64        `gorm:"default:0" json:"price_end_customer"`
	PriceRetail      float64        `gorm:"default:0" json:"price_retail"`
	PriceGrosir      float64        `gorm:"default:0" json:"price_grosir"`
	PriceReseller    float64        `gorm:"default:0" json:"price_reseller"`
	PriceCorporate   float64        `gorm:"default:0" json:"price_corporate"`
	StockQty         float64        `gorm:"default:0" json:"stock_qty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Movements []StockMovement `gorm:"foreignKey:MaterialID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new material
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Material model
func (Material) TableName() string {
	return "bahan"
}

// PriceFor returns the unit price for the given customer tier.
// An unknown tier yields 0.
func (m *Material) PriceFor(level enum.CustomerLevel) float64 {
	switch level {
	case enum.LevelEndCustomer:
		return m.PriceEndCustomer
	case enum.LevelRetail:
		return m.PriceRetail
	case enum.LevelGrosir:
		return m.PriceGrosir
	case enum.LevelReseller:
		return m.PriceReseller
	case enum.LevelCorporate:
		return m.PriceCorporate
	default:
		return 0
	}
}
