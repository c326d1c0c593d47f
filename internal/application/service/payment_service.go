package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/prasetia/cetakindo-api/internal/domain/pricing"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/sirupsen/logrus"
)

// PaymentService records money against orders and keeps each order's
// payment status in sync with its ledger. Status is derived, never set
// by hand: an order is Lunas exactly when its payments cover its total.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	orderRepo    repository.OrderRepository
	materialRepo repository.MaterialRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	materialRepo repository.MaterialRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		orderRepo:    orderRepo,
		materialRepo: materialRepo,
	}
}

// AddPaymentInput represents a single direct payment on an order
type AddPaymentInput struct {
	OrderID uuid.UUID
	Amount  float64
	Method  string
	Notes   *string
}

// AddPayment appends a payment to an order, re-derives the payment
// status from the stored rows and returns the re-read order graph.
// Overpayment is accepted; the balance simply floors at zero.
func (s *PaymentService) AddPayment(ctx context.Context, input *AddPaymentInput) (*entity.Order, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	order, err := s.orderRepo.GetWithGraph(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	payment := &entity.Payment{
		OrderID: order.ID,
		Amount:  input.Amount,
		Method:  input.Method,
		Notes:   input.Notes,
	}
	if payment.Method == "" {
		payment.Method = "cash"
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.syncPaymentStatus(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithGraph(ctx, order.ID)
}

// syncPaymentStatus recomputes the order's payment status from the
// stored payment rows and writes it only when it actually changed. A
// residual balance at or below pricing.BalanceTolerance counts as
// settled, so Lunas can arrive a cent short of the strict total.
func (s *PaymentService) syncPaymentStatus(ctx context.Context, order *entity.Order) error {
	paid, err := s.paymentRepo.SumByOrderID(ctx, order.ID)
	if err != nil {
		return err
	}

	total, err := s.orderTotal(ctx, order)
	if err != nil {
		return err
	}

	derived := enum.PaymentBelumLunas
	if pricing.Balance(total, paid) <= pricing.BalanceTolerance {
		derived = enum.PaymentLunas
	}

	if derived == order.PaymentStatus {
		return nil
	}
	return s.orderRepo.UpdatePaymentStatus(ctx, order.ID, derived)
}

func (s *PaymentService) orderTotal(ctx context.Context, order *entity.Order) (float64, error) {
	snapshot, err := s.materialRepo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return pricing.OrderTotal(order.Items, order.Customer, snapshot), nil
}

// BulkPaymentInput represents a lump sum to spread over a customer's
// unsettled orders.
type BulkPaymentInput struct {
	CustomerID *uuid.UUID
	Amount     float64
	Method     string
	Notes      *string
}

// BulkAllocation reports how much of a bulk payment landed on one order.
type BulkAllocation struct {
	Order     *entity.Order `json:"order"`
	Allocated float64       `json:"allocated"`
	Settled   bool          `json:"settled"`
}

// BulkPaymentResult is the outcome of a bulk allocation run.
type BulkPaymentResult struct {
	Allocations []BulkAllocation `json:"allocations"`
	Remaining   float64          `json:"remaining"`
	Message     string           `json:"message,omitempty"`
}

// AllocateBulk spreads a lump sum across unsettled orders, oldest first.
// Each order takes the smaller of the remaining sum and its outstanding
// balance; orders already within tolerance of settled are skipped. When
// nothing is allocatable the run returns without writing anything.
func (s *PaymentService) AllocateBulk(ctx context.Context, input *BulkPaymentInput) (*BulkPaymentResult, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Bulk payment amount must be positive")
	}

	orders, err := s.orderRepo.ListUnsettled(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.materialRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = "cash"
	}

	remaining := input.Amount
	payments := make([]entity.Payment, 0, len(orders))
	settledIDs := make([]uuid.UUID, 0, len(orders))
	allocatedIDs := make([]uuid.UUID, 0, len(orders))
	allocatedAmounts := make(map[uuid.UUID]float64, len(orders))

	for _, order := range orders {
		if remaining <= 0 {
			break
		}

		total := pricing.OrderTotal(order.Items, order.Customer, snapshot)
		balance := pricing.Balance(total, order.TotalPaid())
		if balance <= pricing.BalanceTolerance {
			continue
		}

		allocation := balance
		if remaining < allocation {
			allocation = remaining
		}

		payments = append(payments, entity.Payment{
			OrderID: order.ID,
			Amount:  allocation,
			Method:  method,
			Notes:   input.Notes,
		})
		allocatedIDs = append(allocatedIDs, order.ID)
		allocatedAmounts[order.ID] = allocation
		remaining -= allocation

		if balance-allocation <= pricing.BalanceTolerance {
			settledIDs = append(settledIDs, order.ID)
		}
	}

	if len(payments) == 0 {
		return &BulkPaymentResult{
			Allocations: []BulkAllocation{},
			Remaining:   remaining,
			Message:     "No outstanding balance to allocate",
		}, nil
	}

	if err := s.paymentRepo.CreateBatch(ctx, payments); err != nil {
		return nil, err
	}

	// Status flips are independent writes: a failure here leaves the
	// payments booked and the status one sync behind, which the next
	// payment on the order repairs.
	for _, id := range settledIDs {
		if err := s.orderRepo.UpdatePaymentStatus(ctx, id, enum.PaymentLunas); err != nil {
			logrus.WithError(err).WithField("order_id", id).
				Warn("Failed to flip payment status after bulk allocation")
		}
	}

	allocations := make([]BulkAllocation, 0, len(allocatedIDs))
	settled := make(map[uuid.UUID]bool, len(settledIDs))
	for _, id := range settledIDs {
		settled[id] = true
	}
	for _, id := range allocatedIDs {
		fresh, err := s.orderRepo.GetWithGraph(ctx, id)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, BulkAllocation{
			Order:     fresh,
			Allocated: allocatedAmounts[id],
			Settled:   settled[id],
		})
	}

	return &BulkPaymentResult{
		Allocations: allocations,
		Remaining:   remaining,
	}, nil
}

// OrderPayments lists the payment rows of one order
func (s *PaymentService) OrderPayments(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.paymentRepo.GetByOrderID(ctx, orderID)
}
