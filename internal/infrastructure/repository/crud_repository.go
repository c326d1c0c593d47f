package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	domainRepo "github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
	"gorm.io/gorm"
)

type crudRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
}

// NewCrudRepository creates a generic repository for a master-data entity.
// searchColumns are matched case-insensitively against the list search term.
func NewCrudRepository[T any](db *gorm.DB, searchColumns ...string) domainRepo.Crud[T] {
	return &crudRepository[T]{db: db, searchColumns: searchColumns}
}

func (r *crudRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *crudRepository[T]) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]T, int64, error) {
	var records []T
	var total int64

	var model T
	query := r.db.WithContext(ctx).Model(&model)

	if search != "" && len(r.searchColumns) > 0 {
		clauses := make([]string, len(r.searchColumns))
		args := make([]interface{}, len(r.searchColumns))
		for i, col := range r.searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = "%" + strings.ToLower(search) + "%"
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *crudRepository[T]) Update(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	return r.db.WithContext(ctx).Delete(&model, "id = ?", id).Error
}
