package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// MaterialRepository defines the interface for material (bahan) data
// operations. Beyond plain CRUD it serves the pricing snapshot used by the
// order total calculation and the cached stock quantity written by the
// stock movement applier.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Material, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Material, error)
	// Snapshot returns all materials keyed by ID, the in-memory price
	// table handed to the pure total calculation.
	Snapshot(ctx context.Context) (map[uuid.UUID]entity.Material, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Material, int64, error)
	Update(ctx context.Context, material *entity.Material) error
	UpdateStockQty(ctx context.Context, id uuid.UUID, qty float64) error
	ListNegativeStock(ctx context.Context) ([]entity.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
