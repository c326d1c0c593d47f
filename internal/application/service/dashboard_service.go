package service

import (
	"context"
	"time"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/prasetia/cetakindo-api/internal/domain/pricing"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
)

// DashboardService aggregates the numbers shown on the back-office
// landing page.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	orderRepo     repository.OrderRepository
	materialRepo  repository.MaterialRepository
	stock         *StockService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, orderRepo repository.OrderRepository, materialRepo repository.MaterialRepository, stock *StockService) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		orderRepo:     orderRepo,
		materialRepo:  materialRepo,
		stock:         stock,
	}
}

// DashboardSummary is the landing page payload
type DashboardSummary struct {
	RevenueToday   float64           `json:"revenue_today"`
	RevenueMonth   float64           `json:"revenue_month"`
	ExpenseMonth   float64           `json:"expense_month"`
	Receivables    float64           `json:"receivables"`
	OrdersByStatus map[string]int64  `json:"orders_by_status"`
	NegativeStock  []entity.Material `json:"negative_stock"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// Summary builds the dashboard payload: today's and this month's
// revenue, this month's expenses, the order pipeline by status and any
// materials in stock deficit.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	revenueToday, err := s.analyticsRepo.RevenueBetween(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}

	revenueMonth, err := s.analyticsRepo.RevenueBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	expenseMonth, err := s.analyticsRepo.ExpenseTotalBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.analyticsRepo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	ordersByStatus := make(map[string]int64, len(statusCounts))
	for status, count := range statusCounts {
		ordersByStatus[status.String()] = count
	}
	for _, status := range []enum.ProductionStatus{
		enum.StatusPending, enum.StatusWaiting, enum.StatusProses, enum.StatusReady,
	} {
		if _, ok := ordersByStatus[status.String()]; !ok {
			ordersByStatus[status.String()] = 0
		}
	}

	receivables, err := s.outstandingReceivables(ctx)
	if err != nil {
		return nil, err
	}

	negativeStock, err := s.stock.NegativeStock(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		RevenueToday:   revenueToday,
		RevenueMonth:   revenueMonth,
		ExpenseMonth:   expenseMonth,
		Receivables:    receivables,
		OrdersByStatus: ordersByStatus,
		NegativeStock:  negativeStock,
		GeneratedAt:    now,
	}, nil
}

// outstandingReceivables sums the remaining balance of every order still
// marked Belum Lunas.
func (s *DashboardService) outstandingReceivables(ctx context.Context) (float64, error) {
	unsettled, err := s.orderRepo.ListUnsettled(ctx, nil)
	if err != nil {
		return 0, err
	}
	if len(unsettled) == 0 {
		return 0, nil
	}

	snapshot, err := s.materialRepo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range unsettled {
		order := &unsettled[i]
		orderTotal := pricing.OrderTotal(order.Items, order.Customer, snapshot)
		total += pricing.Balance(orderTotal, order.TotalPaid())
	}
	return total, nil
}
