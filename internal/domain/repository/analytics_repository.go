package repository

import (
	"context"
	"time"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
)

// AnalyticsRepository defines aggregate queries for the dashboard and
// reports.
type AnalyticsRepository interface {
	RevenueBetween(ctx context.Context, start, end time.Time) (float64, error)
	ExpenseTotalBetween(ctx context.Context, start, end time.Time) (float64, error)
	CountOrdersByStatus(ctx context.Context) (map[enum.ProductionStatus]int64, error)
	PaymentsBetween(ctx context.Context, start, end time.Time) ([]entity.Payment, error)
	ExpensesBetween(ctx context.Context, start, end time.Time) ([]entity.Expense, error)
}
