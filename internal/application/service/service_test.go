package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	domainRepo "github.com/prasetia/cetakindo-api/internal/domain/repository"
	infraRepo "github.com/prasetia/cetakindo-api/internal/infrastructure/repository"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the services against an in-memory database.
type testEnv struct {
	db           *gorm.DB
	orderRepo    domainRepo.OrderRepository
	paymentRepo  domainRepo.PaymentRepository
	materialRepo domainRepo.MaterialRepository
	movementRepo domainRepo.StockMovementRepository
	settingRepo  domainRepo.SettingRepository
	customerRepo domainRepo.Crud[entity.Customer]

	stock    *StockService
	orders   *OrderService
	payments *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Employee{},
		&entity.Material{},
		&entity.Finishing{},
		&entity.Supplier{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.StockMovement{},
		&entity.Setting{},
	))

	// Nota counter starts at INV-000 like a fresh install.
	require.NoError(t, db.Create(&entity.Setting{Key: entity.SettingNotaPrefix, Value: "INV"}).Error)
	require.NoError(t, db.Create(&entity.Setting{Key: entity.SettingNotaLastNumber, Value: "000"}).Error)

	orderRepo := infraRepo.NewOrderRepository(db)
	orderItemRepo := infraRepo.NewOrderItemRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	materialRepo := infraRepo.NewMaterialRepository(db)
	movementRepo := infraRepo.NewStockMovementRepository(db)
	settingRepo := infraRepo.NewSettingRepository(db)
	customerRepo := infraRepo.NewCrudRepository[entity.Customer](db, "name")
	employeeRepo := infraRepo.NewCrudRepository[entity.Employee](db, "name")
	supplierRepo := infraRepo.NewCrudRepository[entity.Supplier](db, "name")
	finishingRepo := infraRepo.NewCrudRepository[entity.Finishing](db, "name")

	stock := NewStockService(movementRepo, materialRepo, supplierRepo)
	orders := NewOrderService(orderRepo, orderItemRepo, materialRepo, customerRepo, finishingRepo, employeeRepo, settingRepo, stock)
	payments := NewPaymentService(paymentRepo, orderRepo, materialRepo)

	return &testEnv{
		db:           db,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		materialRepo: materialRepo,
		movementRepo: movementRepo,
		settingRepo:  settingRepo,
		customerRepo: customerRepo,
		stock:        stock,
		orders:       orders,
		payments:     payments,
	}
}

func (e *testEnv) createCustomer(t *testing.T, name string, level enum.CustomerLevel) *entity.Customer {
	t.Helper()
	customer := &entity.Customer{Name: name, Level: level}
	require.NoError(t, e.customerRepo.Create(context.Background(), customer))
	return customer
}

func (e *testEnv) createMaterial(t *testing.T, name string, price, stockQty float64) *entity.Material {
	t.Helper()
	material := &entity.Material{
		Name:             name,
		Unit:             "m2",
		PriceEndCustomer: price,
		PriceRetail:      price,
		PriceGrosir:      price,
		PriceReseller:    price,
		PriceCorporate:   price,
		StockQty:         stockQty,
	}
	require.NoError(t, e.materialRepo.Create(context.Background(), material))
	return material
}

// createUnitOrder creates an order of dimensionless items totalling
// qty * the material's unit price.
func (e *testEnv) createUnitOrder(t *testing.T, customer *entity.Customer, material *entity.Material, qty float64) *entity.Order {
	t.Helper()
	order, err := e.orders.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: &customer.ID,
		Items: []OrderItemInput{
			{MaterialID: material.ID, Qty: qty},
		},
	})
	require.NoError(t, err)
	return order
}

func defaultPage() *pagination.PaginationParams {
	return &pagination.PaginationParams{Page: 1, PerPage: 50}
}

// backdate pins an order's created_at so FIFO ordering is deterministic
// even when orders are created within the same tick.
func (e *testEnv) backdate(t *testing.T, orderID uuid.UUID, at time.Time) {
	t.Helper()
	require.NoError(t, e.db.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("created_at", at).Error)
}
