package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	domainRepo "github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
	"gorm.io/gorm"
)

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *gorm.DB) domainRepo.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Material, error) {
	var materials []entity.Material
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&materials).Error
	return materials, err
}

func (r *materialRepository) Snapshot(ctx context.Context) (map[uuid.UUID]entity.Material, error) {
	var materials []entity.Material
	if err := r.db.WithContext(ctx).Find(&materials).Error; err != nil {
		return nil, err
	}
	snapshot := make(map[uuid.UUID]entity.Material, len(materials))
	for _, m := range materials {
		snapshot[m.ID] = m
	}
	return snapshot, nil
}

func (r *materialRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Material, int64, error) {
	var materials []entity.Material
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Material{})

	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&materials).Error

	return materials, total, err
}

func (r *materialRepository) Update(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}

func (r *materialRepository) UpdateStockQty(ctx context.Context, id uuid.UUID, qty float64) error {
	return r.db.WithContext(ctx).Model(&entity.Material{}).
		Where("id = ?", id).
		Update("stock_qty", qty).Error
}

func (r *materialRepository) ListNegativeStock(ctx context.Context) ([]entity.Material, error) {
	var materials []entity.Material
	err := r.db.WithContext(ctx).
		Where("stock_qty < 0").
		Order("stock_qty ASC").
		Find(&materials).Error
	return materials, err
}

func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Material{}, "id = ?", id).Error
}
