package repository

import (
	"context"
	"time"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	domainRepo "github.com/prasetia/cetakindo-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) RevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Where("paid_at >= ? AND paid_at <= ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *analyticsRepository) ExpenseTotalBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Where("spent_at >= ? AND spent_at <= ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context) (map[enum.ProductionStatus]int64, error) {
	var rows []struct {
		Status enum.ProductionStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.ProductionStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *analyticsRepository) PaymentsBetween(ctx context.Context, start, end time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Order").
		Where("paid_at >= ? AND paid_at <= ?", start, end).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *analyticsRepository) ExpensesBetween(ctx context.Context, start, end time.Time) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Where("spent_at >= ? AND spent_at <= ?", start, end).
		Order("spent_at ASC").
		Find(&expenses).Error
	return expenses, err
}
