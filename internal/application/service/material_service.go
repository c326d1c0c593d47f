package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// MaterialService manages the material catalog. Prices are editable
// here; the cached stock quantity is not. Stock only moves through the
// ledger, so material updates never touch StockQty and an opening
// balance arrives as an "in" movement.
type MaterialService struct {
	materialRepo repository.MaterialRepository
	stock        *StockService
}

// NewMaterialService creates a new material service
func NewMaterialService(materialRepo repository.MaterialRepository, stock *StockService) *MaterialService {
	return &MaterialService{materialRepo: materialRepo, stock: stock}
}

// CreateMaterialInput represents the create material input
type CreateMaterialInput struct {
	Name             string
	Unit             string
	PriceEndCustomer float64
	PriceRetail      float64
	PriceGrosir      float64
	PriceReseller    float64
	PriceCorporate   float64
	InitialStock     float64
}

// CreateMaterial stores a new material. A positive initial stock is
// booked as the material's first ledger movement.
func (s *MaterialService) CreateMaterial(ctx context.Context, input *CreateMaterialInput) (*entity.Material, error) {
	material := &entity.Material{
		Name:             input.Name,
		Unit:             input.Unit,
		PriceEndCustomer: input.PriceEndCustomer,
		PriceRetail:      input.PriceRetail,
		PriceGrosir:      input.PriceGrosir,
		PriceReseller:    input.PriceReseller,
		PriceCorporate:   input.PriceCorporate,
	}
	if material.Unit == "" {
		material.Unit = "m2"
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	if input.InitialStock > 0 {
		note := "Stok awal"
		if _, err := s.stock.ApplyMovement(ctx, &ApplyMovementInput{
			MaterialID: material.ID,
			Type:       enum.MovementIn,
			Qty:        input.InitialStock,
			Notes:      &note,
		}); err != nil {
			return nil, err
		}
	}

	return s.materialRepo.GetByID(ctx, material.ID)
}

// GetMaterial retrieves a material by ID
func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}
	return material, nil
}

// ListMaterials lists materials with pagination and optional search
func (s *MaterialService) ListMaterials(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Material], error) {
	materials, total, err := s.materialRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(materials, pag), nil
}

// UpdateMaterialInput represents the update material input. StockQty is
// deliberately absent.
type UpdateMaterialInput struct {
	Name             *string
	Unit             *string
	PriceEndCustomer *float64
	PriceRetail      *float64
	PriceGrosir      *float64
	PriceReseller    *float64
	PriceCorporate   *float64
}

// UpdateMaterial updates catalog fields of a material
func (s *MaterialService) UpdateMaterial(ctx context.Context, id uuid.UUID, input *UpdateMaterialInput) (*entity.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.Unit != nil {
		material.Unit = *input.Unit
	}
	if input.PriceEndCustomer != nil {
		material.PriceEndCustomer = *input.PriceEndCustomer
	}
	if input.PriceRetail != nil {
		material.PriceRetail = *input.PriceRetail
	}
	if input.PriceGrosir != nil {
		material.PriceGrosir = *input.PriceGrosir
	}
	if input.PriceReseller != nil {
		material.PriceReseller = *input.PriceReseller
	}
	if input.PriceCorporate != nil {
		material.PriceCorporate = *input.PriceCorporate
	}

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// DeleteMaterial removes a material from the catalog. Its ledger rows
// remain for history.
func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return apperror.NewNotFoundError("Material")
	}
	return s.materialRepo.Delete(ctx, id)
}
