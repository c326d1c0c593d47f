package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a print order with its line items and payments.
// PaymentStatus is always recomputable from the items, the customer's
// price tier and the sum of payments; the stored value is a cache of
// that derivation.
type Order struct {
	ID            uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    *uuid.UUID            `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EmployeeID    *uuid.UUID            `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	NotaNo        string                `gorm:"size:100;unique;not null" json:"no_nota"`
	Status        enum.ProductionStatus `gorm:"default:0" json:"status"`
	PaymentStatus enum.PaymentStatus    `gorm:"default:0" json:"payment_status"`
	Notes         *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	DeletedAt     gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee *Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// TotalPaid returns the sum of all payments recorded on the order.
func (o *Order) TotalPaid() float64 {
	var paid float64
	for _, p := range o.Payments {
		paid += p.Amount
	}
	return paid
}

// OrderItem represents a line item in an order. Length and width may be
// zero for flat-fee items without physical dimensions. Each item moves
// through the production lifecycle independently of its siblings.
type OrderItem struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID             `gorm:"type:uuid;not null;index" json:"order_id"`
	MaterialID  uuid.UUID             `gorm:"type:uuid;not null;index" json:"material_id"`
	FinishingID *uuid.UUID            `gorm:"type:uuid;index" json:"finishing_id,omitempty"`
	Description *string               `gorm:"type:text" json:"description,omitempty"`
	Length      float64               `gorm:"default:0" json:"length"`
	Width       float64               `gorm:"default:0" json:"width"`
	Qty         float64               `gorm:"default:1" json:"qty"`
	Status      enum.ProductionStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Order     Order      `gorm:"foreignKey:OrderID" json:"-"`
	Material  Material   `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
	Finishing *Finishing `gorm:"foreignKey:FinishingID" json:"finishing,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
