package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// StockMovementRepository defines the interface for the immutable stock
// ledger. Rows are only ever inserted.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context, params *pagination.PaginationParams, materialID *uuid.UUID) ([]entity.StockMovement, int64, error)
	// SignedSum returns the sum of signed quantities for a material; it
	// must match the material's cached stock within tolerance.
	SignedSum(ctx context.Context, materialID uuid.UUID) (float64, error)
}
