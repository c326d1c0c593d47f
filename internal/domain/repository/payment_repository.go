package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data operations.
// Payments are append-only: no update or delete methods exist.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	CreateBatch(ctx context.Context, payments []entity.Payment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error)
	SumByOrderID(ctx context.Context, orderID uuid.UUID) (float64, error)
}
