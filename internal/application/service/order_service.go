package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/prasetia/cetakindo-api/internal/domain/pricing"
	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// OrderService handles order intake and the production lifecycle. Every
// mutating operation ends by re-reading the affected order's full graph
// from the store and returning that fresh copy, never the locally
// assembled one.
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	materialRepo  repository.MaterialRepository
	customerRepo  repository.Crud[entity.Customer]
	finishingRepo repository.Crud[entity.Finishing]
	employeeRepo  repository.Crud[entity.Employee]
	settingRepo   repository.SettingRepository
	stock         *StockService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	materialRepo repository.MaterialRepository,
	customerRepo repository.Crud[entity.Customer],
	finishingRepo repository.Crud[entity.Finishing],
	employeeRepo repository.Crud[entity.Employee],
	settingRepo repository.SettingRepository,
	stock *StockService,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		materialRepo:  materialRepo,
		customerRepo:  customerRepo,
		finishingRepo: finishingRepo,
		employeeRepo:  employeeRepo,
		settingRepo:   settingRepo,
		stock:         stock,
	}
}

// OrderItemInput represents a line item in a new order
type OrderItemInput struct {
	MaterialID  uuid.UUID
	FinishingID *uuid.UUID
	Description *string
	Length      float64
	Width       float64
	Qty         float64
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID *uuid.UUID
	EmployeeID *uuid.UUID
	Notes      *string
	Items      []OrderItemInput
}

// CreateOrder generates the next nota number, creates the order with its
// items and returns the freshly re-read order graph.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order needs at least one item")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	materialIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		materialIDs[i] = item.MaterialID
	}
	materials, err := s.materialRepo.GetByIDs(ctx, materialIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(materials))
	for _, m := range materials {
		known[m.ID] = true
	}
	for _, item := range input.Items {
		if !known[item.MaterialID] {
			return nil, apperror.NewNotFoundError("Material")
		}
	}

	notaNo, err := s.settingRepo.NextNota(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID:    input.CustomerID,
		EmployeeID:    input.EmployeeID,
		NotaNo:        notaNo,
		Status:        enum.StatusPending,
		PaymentStatus: enum.PaymentBelumLunas,
		Notes:         input.Notes,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, len(input.Items))
	for i, in := range input.Items {
		qty := in.Qty
		if qty <= 0 {
			qty = 1
		}
		items[i] = entity.OrderItem{
			OrderID:     order.ID,
			MaterialID:  in.MaterialID,
			FinishingID: in.FinishingID,
			Description: in.Description,
			Length:      in.Length,
			Width:       in.Width,
			Qty:         qty,
			Status:      enum.StatusPending,
		}
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithGraph(ctx, order.ID)
}

// GetOrder retrieves an order with its full graph
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithGraph(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// OrderTotal computes the current billable total of an order against the
// live material price snapshot.
func (s *OrderService) OrderTotal(ctx context.Context, order *entity.Order) (float64, error) {
	snapshot, err := s.materialRepo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return pricing.OrderTotal(order.Items, order.Customer, snapshot), nil
}

// UpdateOrderStatus moves an order through the production lifecycle and
// applies the tied stock movements: entering Waiting from Pending books
// each item's material consumption out of stock, falling back from
// Waiting or Proses to Pending books it back in. No other transition
// pair touches stock.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.ProductionStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Unknown order status")
	}

	order, err := s.orderRepo.GetWithGraph(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if order.Status == status {
		return order, nil
	}

	from := order.Status
	switch {
	case from == enum.StatusPending && status == enum.StatusWaiting:
		if err := s.applyProductionMovements(ctx, order, enum.MovementOut); err != nil {
			return nil, err
		}
	case (from == enum.StatusWaiting || from == enum.StatusProses) && status == enum.StatusPending:
		if err := s.applyProductionMovements(ctx, order, enum.MovementIn); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithGraph(ctx, id)
}

// applyProductionMovements books one stock movement per item whose
// consumption (footprint plus finishing allowance, times quantity) is
// positive. Items that compute to zero or less are skipped.
func (s *OrderService) applyProductionMovements(ctx context.Context, order *entity.Order, direction enum.MovementType) error {
	note := "Produksi nota " + order.NotaNo
	if direction == enum.MovementIn {
		note = "Pembatalan produksi nota " + order.NotaNo
	}

	for _, item := range order.Items {
		var finishing *entity.Finishing
		if item.FinishingID != nil {
			f, err := s.finishingRepo.GetByID(ctx, *item.FinishingID)
			if err != nil {
				return err
			}
			finishing = f
		}

		consumption := pricing.Consumption(item, finishing)
		if consumption <= 0 {
			continue
		}

		refOrderID := order.ID
		if _, err := s.stock.ApplyMovement(ctx, &ApplyMovementInput{
			MaterialID: item.MaterialID,
			Type:       direction,
			Qty:        consumption,
			RefOrderID: &refOrderID,
			Notes:      &note,
		}); err != nil {
			return err
		}
	}
	return nil
}

// UpdateItemStatus advances a single item's production status. When the
// change leaves every item of the order at Ready, the order itself is
// promoted to Ready as a side effect.
func (s *OrderService) UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status enum.ProductionStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Unknown item status")
	}

	item, err := s.orderItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Order item")
	}

	if err := s.orderItemRepo.UpdateStatus(ctx, itemID, status); err != nil {
		return nil, err
	}

	if status == enum.StatusReady {
		siblings, err := s.orderItemRepo.GetByOrderID(ctx, item.OrderID)
		if err != nil {
			return nil, err
		}
		allReady := true
		for _, sibling := range siblings {
			if sibling.Status != enum.StatusReady {
				allReady = false
				break
			}
		}
		if allReady {
			if err := s.orderRepo.UpdateStatus(ctx, item.OrderID, enum.StatusReady); err != nil {
				return nil, err
			}
		}
	}

	return s.orderRepo.GetWithGraph(ctx, item.OrderID)
}

// AssignEmployee sets the production assignee of an order
func (s *OrderService) AssignEmployee(ctx context.Context, orderID, employeeID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	order.EmployeeID = &employee.ID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithGraph(ctx, orderID)
}

// DeleteOrder removes an order and its items. Payments already received
// are kept in the ledger.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if err := s.orderItemRepo.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}
