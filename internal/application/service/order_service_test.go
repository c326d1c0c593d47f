package service

import (
	"context"
	"testing"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelRetail)
	material := env.createMaterial(t, "Flexi 280gr", 25, 100)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &customer.ID,
		Items: []OrderItemInput{
			{MaterialID: material.ID, Length: 2, Width: 1, Qty: 2},
			{MaterialID: material.ID, Qty: 0}, // defaults to 1
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-001", order.NotaNo)
	assert.Equal(t, enum.StatusPending, order.Status)
	assert.Equal(t, enum.PaymentBelumLunas, order.PaymentStatus)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 1.0, order.Items[1].Qty)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Budi", order.Customer.Name)

	// The counter advances per order.
	second := env.createUnitOrder(t, customer, material, 1)
	assert.Equal(t, "INV-002", second.NotaNo)
}

func TestCreateOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelRetail)
	material := env.createMaterial(t, "Flexi", 25, 100)

	_, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &customer.ID,
		Items:      []OrderItemInput{},
	})
	assert.Error(t, err)

	unknown := entity.Customer{}
	unknown.ID = material.ID // any ID that is not a customer
	_, err = env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &unknown.ID,
		Items:      []OrderItemInput{{MaterialID: material.ID, Qty: 1}},
	})
	assert.Error(t, err)
}

func TestOrderStatusConsumesStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 50, 10)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &customer.ID,
		Items: []OrderItemInput{
			{MaterialID: material.ID, Length: 2, Width: 1, Qty: 1}, // consumes 2 m2
		},
	})
	require.NoError(t, err)

	// Pending -> Waiting books the consumption out of stock.
	order, err = env.orders.UpdateOrderStatus(ctx, order.ID, enum.StatusWaiting)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusWaiting, order.Status)

	fresh, err := env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, fresh.StockQty, 1e-9)

	movements, _, err := env.movementRepo.List(ctx, defaultPage(), &material.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, enum.MovementOut, movements[0].Type)
	assert.Equal(t, 2.0, movements[0].Qty)
	require.NotNil(t, movements[0].RefOrderID)
	assert.Equal(t, order.ID, *movements[0].RefOrderID)

	// Waiting -> Proses does not touch stock.
	order, err = env.orders.UpdateOrderStatus(ctx, order.ID, enum.StatusProses)
	require.NoError(t, err)
	fresh, err = env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, fresh.StockQty, 1e-9)

	// Proses -> Pending books the consumption back in.
	order, err = env.orders.UpdateOrderStatus(ctx, order.ID, enum.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusPending, order.Status)

	fresh, err = env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, fresh.StockQty, 1e-9)

	movements, _, err = env.movementRepo.List(ctx, defaultPage(), &material.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 2)
}

func TestOrderStatusSkipsZeroConsumption(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Stiker", 15, 5)

	// Dimensionless item: footprint is zero, nothing to book.
	order := env.createUnitOrder(t, customer, material, 3)

	_, err := env.orders.UpdateOrderStatus(ctx, order.ID, enum.StatusWaiting)
	require.NoError(t, err)

	movements, _, err := env.movementRepo.List(ctx, defaultPage(), &material.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)

	fresh, err := env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fresh.StockQty)
}

func TestOrderStatusNoopOnSameStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 50, 10)
	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &customer.ID,
		Items:      []OrderItemInput{{MaterialID: material.ID, Length: 2, Width: 1, Qty: 1}},
	})
	require.NoError(t, err)

	_, err = env.orders.UpdateOrderStatus(ctx, order.ID, enum.StatusPending)
	require.NoError(t, err)

	movements, _, err := env.movementRepo.List(ctx, defaultPage(), &material.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestItemReadyPromotesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 50, 10)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &customer.ID,
		Items: []OrderItemInput{
			{MaterialID: material.ID, Qty: 1},
			{MaterialID: material.ID, Qty: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	// One item ready: the order is not promoted yet.
	updated, err := env.orders.UpdateItemStatus(ctx, order.Items[0].ID, enum.StatusReady)
	require.NoError(t, err)
	assert.NotEqual(t, enum.StatusReady, updated.Status)

	// Last item ready: the order follows.
	updated, err = env.orders.UpdateItemStatus(ctx, order.Items[1].ID, enum.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusReady, updated.Status)
}

func TestDeleteOrderKeepsPayments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 10)
	order := env.createUnitOrder(t, customer, material, 5)

	_, err := env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 20})
	require.NoError(t, err)

	require.NoError(t, env.orders.DeleteOrder(ctx, order.ID))

	gone, err := env.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	payments, err := env.paymentRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
