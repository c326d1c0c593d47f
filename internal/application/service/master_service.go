package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// MasterService is the generic service for simple master-data entities:
// customers, employees, suppliers, finishings, expenses, banks, assets
// and debts share it instead of each carrying a near-identical service.
type MasterService[T any] struct {
	repo     repository.Crud[T]
	resource string
}

// NewMasterService creates a generic master-data service. The resource
// name is used in not-found messages.
func NewMasterService[T any](repo repository.Crud[T], resource string) *MasterService[T] {
	return &MasterService[T]{repo: repo, resource: resource}
}

// Create stores a new record
func (s *MasterService[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get retrieves a record by ID
func (s *MasterService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError(s.resource)
	}
	return record, nil
}

// List lists records with pagination and optional search
func (s *MasterService[T]) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[T], error) {
	records, total, err := s.repo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// Update mutates a record through apply after confirming it exists. An
// error from apply aborts the update without writing.
func (s *MasterService[T]) Update(ctx context.Context, id uuid.UUID, apply func(*T) error) (*T, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError(s.resource)
	}

	if err := apply(record); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a record by ID
func (s *MasterService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.NewNotFoundError(s.resource)
	}
	return s.repo.Delete(ctx, id)
}
