package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/prasetia/cetakindo-api/internal/domain/pricing"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

// StockService owns the stock ledger. All stock changes flow through
// ApplyMovement: a ledger row is written first, then the material's
// cached quantity is recomputed from it. Stock may go negative; the
// shop records reality and flags the deficit instead of blocking
// production.
type StockService struct {
	movementRepo repository.StockMovementRepository
	materialRepo repository.MaterialRepository
	supplierRepo repository.Crud[entity.Supplier]
}

// NewStockService creates a new stock service
func NewStockService(
	movementRepo repository.StockMovementRepository,
	materialRepo repository.MaterialRepository,
	supplierRepo repository.Crud[entity.Supplier],
) *StockService {
	return &StockService{
		movementRepo: movementRepo,
		materialRepo: materialRepo,
		supplierRepo: supplierRepo,
	}
}

// ApplyMovementInput represents a stock movement to book
type ApplyMovementInput struct {
	MaterialID uuid.UUID
	Type       enum.MovementType
	Qty        float64
	SupplierID *uuid.UUID
	RefOrderID *uuid.UUID
	Notes      *string
}

// ApplyMovement appends a ledger row and updates the material's cached
// stock. The ledger row is the source of truth: it is written before the
// cache, so a failed cache write leaves a recoverable ledger, never a
// phantom quantity.
func (s *StockService) ApplyMovement(ctx context.Context, input *ApplyMovementInput) (*entity.StockMovement, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown movement type")
	}
	if input.Qty <= 0 {
		return nil, apperror.NewBadRequestError("Movement quantity must be positive")
	}

	material, err := s.materialRepo.GetByID(ctx, input.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	movement := &entity.StockMovement{
		MaterialID: input.MaterialID,
		Type:       input.Type,
		Qty:        input.Qty,
		SupplierID: input.SupplierID,
		RefOrderID: input.RefOrderID,
		Notes:      input.Notes,
	}
	if err := s.movementRepo.Create(ctx, movement); err != nil {
		return nil, err
	}

	newQty := material.StockQty + movement.SignedQty()
	if err := s.materialRepo.UpdateStockQty(ctx, material.ID, newQty); err != nil {
		return nil, err
	}

	if newQty < 0 {
		logrus.WithFields(logrus.Fields{
			"material_id": material.ID,
			"material":    material.Name,
			"stock_qty":   newQty,
		}).Warn("Material stock went negative")
	}

	return movement, nil
}

// ListMovements lists ledger rows, optionally scoped to one material
func (s *StockService) ListMovements(ctx context.Context, params *pagination.PaginationParams, materialID *uuid.UUID) (*pagination.PaginatedResult[entity.StockMovement], error) {
	movements, total, err := s.movementRepo.List(ctx, params, materialID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}

// Opname reconciles a physical count against the cached stock. A
// difference within tolerance is a no-op; otherwise a single corrective
// movement closes the gap.
func (s *StockService) Opname(ctx context.Context, materialID uuid.UUID, countedQty float64, notes *string) (*entity.StockMovement, error) {
	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}

	diff := countedQty - material.StockQty
	if math.Abs(diff) <= pricing.StockTolerance {
		return nil, nil
	}

	movementType := enum.MovementIn
	if diff < 0 {
		movementType = enum.MovementOut
	}

	if notes == nil {
		note := "Stock opname"
		notes = &note
	}

	return s.ApplyMovement(ctx, &ApplyMovementInput{
		MaterialID: materialID,
		Type:       movementType,
		Qty:        math.Abs(diff),
		Notes:      notes,
	})
}

// AuditResult reports one material whose cached stock disagrees with the
// ledger.
type AuditResult struct {
	MaterialID   uuid.UUID `json:"material_id"`
	MaterialName string    `json:"material_name"`
	CachedQty    float64   `json:"cached_qty"`
	LedgerQty    float64   `json:"ledger_qty"`
	Drift        float64   `json:"drift"`
}

// Audit compares every material's cached quantity against the signed sum
// of its ledger and returns the materials that drifted beyond tolerance.
func (s *StockService) Audit(ctx context.Context) ([]AuditResult, error) {
	snapshot, err := s.materialRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]AuditResult, 0)
	for id, material := range snapshot {
		ledgerQty, err := s.movementRepo.SignedSum(ctx, id)
		if err != nil {
			return nil, err
		}
		drift := material.StockQty - ledgerQty
		if math.Abs(drift) > pricing.StockTolerance {
			results = append(results, AuditResult{
				MaterialID:   id,
				MaterialName: material.Name,
				CachedQty:    material.StockQty,
				LedgerQty:    ledgerQty,
				Drift:        drift,
			})
		}
	}
	return results, nil
}

// NegativeStock lists materials whose cached stock is below zero
func (s *StockService) NegativeStock(ctx context.Context) ([]entity.Material, error) {
	return s.materialRepo.ListNegativeStock(ctx)
}
