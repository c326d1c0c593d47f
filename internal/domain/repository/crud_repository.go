package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// Crud is a generic repository for simple master-data entities (customers,
// employees, suppliers, finishings, expenses, banks, assets, debts). The
// near-identical per-entity data access of these tables is parameterized
// over the entity type instead of being duplicated.
type Crud[T any] interface {
	Create(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]T, int64, error)
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}
