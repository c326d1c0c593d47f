package service

import (
	"context"
	"testing"
	"time"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPaymentDerivesStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)
	order := env.createUnitOrder(t, customer, material, 10) // total 100

	order, err := env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 40})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentBelumLunas, order.PaymentStatus)
	assert.Equal(t, 40.0, order.TotalPaid())

	order, err = env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 60})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentLunas, order.PaymentStatus)
	assert.Equal(t, 100.0, order.TotalPaid())

	// Overpayment is accepted and does not flip the status back.
	order, err = env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentLunas, order.PaymentStatus)
	assert.Equal(t, 150.0, order.TotalPaid())
}

func TestAddPaymentWithinTolerance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)
	order := env.createUnitOrder(t, customer, material, 10) // total 100

	// A residue at or below a cent counts as settled.
	order, err := env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 99.995})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentLunas, order.PaymentStatus)
}

func TestAddPaymentValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)
	order := env.createUnitOrder(t, customer, material, 10)

	_, err := env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 0})
	assert.Error(t, err)

	_, err = env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: -5})
	assert.Error(t, err)
}

func TestMutationResultMatchesRefetch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)
	order := env.createUnitOrder(t, customer, material, 10)

	// The graph returned by a mutation is exactly what a fresh read
	// observes; re-reading changes nothing.
	mutated, err := env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 100})
	require.NoError(t, err)

	refetched, err := env.orderRepo.GetWithGraph(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, refetched)

	assert.Equal(t, mutated.PaymentStatus, refetched.PaymentStatus)
	assert.Equal(t, mutated.Status, refetched.Status)
	assert.Equal(t, mutated.TotalPaid(), refetched.TotalPaid())
	assert.Len(t, refetched.Items, len(mutated.Items))
	assert.Len(t, refetched.Payments, len(mutated.Payments))

	mutatedTotal, err := env.orders.OrderTotal(ctx, mutated)
	require.NoError(t, err)
	refetchedTotal, err := env.orders.OrderTotal(ctx, refetched)
	require.NoError(t, err)
	assert.Equal(t, mutatedTotal, refetchedTotal)
}

func TestAllocateBulkFIFO(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)

	base := time.Now().Add(-time.Hour)
	first := env.createUnitOrder(t, customer, material, 10) // total 100
	second := env.createUnitOrder(t, customer, material, 5) // total 50
	third := env.createUnitOrder(t, customer, material, 20) // total 200
	env.backdate(t, first.ID, base)
	env.backdate(t, second.ID, base.Add(time.Minute))
	env.backdate(t, third.ID, base.Add(2*time.Minute))

	result, err := env.payments.AllocateBulk(ctx, &BulkPaymentInput{
		CustomerID: &customer.ID,
		Amount:     120,
	})
	require.NoError(t, err)

	// Oldest first: 100 settles the first order, 20 lands on the second.
	require.Len(t, result.Allocations, 2)
	assert.Equal(t, 0.0, result.Remaining)

	assert.Equal(t, first.ID, result.Allocations[0].Order.ID)
	assert.Equal(t, 100.0, result.Allocations[0].Allocated)
	assert.True(t, result.Allocations[0].Settled)
	assert.Equal(t, enum.PaymentLunas, result.Allocations[0].Order.PaymentStatus)

	assert.Equal(t, second.ID, result.Allocations[1].Order.ID)
	assert.Equal(t, 20.0, result.Allocations[1].Allocated)
	assert.False(t, result.Allocations[1].Settled)
	assert.Equal(t, enum.PaymentBelumLunas, result.Allocations[1].Order.PaymentStatus)

	// The third order is untouched.
	payments, err := env.paymentRepo.GetByOrderID(ctx, third.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestAllocateBulkSkipsSettledBalances(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)

	base := time.Now().Add(-time.Hour)
	first := env.createUnitOrder(t, customer, material, 10) // total 100
	second := env.createUnitOrder(t, customer, material, 5) // total 50
	env.backdate(t, first.ID, base)
	env.backdate(t, second.ID, base.Add(time.Minute))

	// The first order is fully paid but its stored status was never
	// synced, so it still shows up as unsettled.
	require.NoError(t, env.paymentRepo.Create(ctx, &entity.Payment{
		OrderID: first.ID,
		Amount:  100,
		Method:  "cash",
	}))

	result, err := env.payments.AllocateBulk(ctx, &BulkPaymentInput{
		CustomerID: &customer.ID,
		Amount:     30,
	})
	require.NoError(t, err)

	// Its zero balance keeps it out of the allocation anyway.
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, second.ID, result.Allocations[0].Order.ID)
	assert.Equal(t, 30.0, result.Allocations[0].Allocated)
}

func TestAllocateBulkNothingOutstanding(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)
	order := env.createUnitOrder(t, customer, material, 10)

	_, err := env.payments.AddPayment(ctx, &AddPaymentInput{OrderID: order.ID, Amount: 100})
	require.NoError(t, err)

	result, err := env.payments.AllocateBulk(ctx, &BulkPaymentInput{
		CustomerID: &customer.ID,
		Amount:     500,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Allocations)
	assert.Equal(t, 500.0, result.Remaining)
	assert.NotEmpty(t, result.Message)

	// Nothing was written.
	payments, err := env.paymentRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestAllocateBulkLeavesRemainder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Budi", enum.LevelEndCustomer)
	material := env.createMaterial(t, "Vinyl", 10, 100)
	order := env.createUnitOrder(t, customer, material, 5) // total 50

	result, err := env.payments.AllocateBulk(ctx, &BulkPaymentInput{
		CustomerID: &customer.ID,
		Amount:     80,
	})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, 50.0, result.Allocations[0].Allocated)
	assert.True(t, result.Allocations[0].Settled)
	assert.Equal(t, 30.0, result.Remaining)

	fresh, err := env.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentLunas, fresh.PaymentStatus)
}
