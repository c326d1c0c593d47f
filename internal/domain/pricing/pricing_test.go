package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestItemArea(t *testing.T) {
	assert.Equal(t, 6.0, ItemArea(2, 3))
	assert.Equal(t, 0.25, ItemArea(0.5, 0.5))

	// A missing dimension marks a unit item, not a zero-area one.
	assert.Equal(t, 1.0, ItemArea(0, 3))
	assert.Equal(t, 1.0, ItemArea(2, 0))
	assert.Equal(t, 1.0, ItemArea(0, 0))
	assert.Equal(t, 1.0, ItemArea(-1, 3))
}

func TestItemSubtotal(t *testing.T) {
	material := &entity.Material{
		PriceEndCustomer: 100,
		PriceRetail:      80,
		PriceGrosir:      60,
	}
	item := entity.OrderItem{Length: 2, Width: 3, Qty: 2}

	endCustomer := &entity.Customer{Level: enum.LevelEndCustomer}
	retail := &entity.Customer{Level: enum.LevelRetail}

	assert.Equal(t, 1200.0, ItemSubtotal(item, material, endCustomer))
	assert.Equal(t, 960.0, ItemSubtotal(item, material, retail))

	// Unit item: area counts as 1.
	flatItem := entity.OrderItem{Qty: 3}
	assert.Equal(t, 300.0, ItemSubtotal(flatItem, material, endCustomer))

	assert.Equal(t, 0.0, ItemSubtotal(item, nil, endCustomer))
	assert.Equal(t, 0.0, ItemSubtotal(item, material, nil))
}

func TestItemSubtotalUnknownTier(t *testing.T) {
	material := &entity.Material{PriceEndCustomer: 100}
	item := entity.OrderItem{Length: 1, Width: 1, Qty: 1}
	customer := &entity.Customer{Level: enum.CustomerLevel(99)}

	assert.Equal(t, 0.0, ItemSubtotal(item, material, customer))
}

func TestOrderTotal(t *testing.T) {
	vinylID := uuid.New()
	flexiID := uuid.New()
	materials := map[uuid.UUID]entity.Material{
		vinylID: {ID: vinylID, PriceEndCustomer: 50, PriceRetail: 40},
		flexiID: {ID: flexiID, PriceEndCustomer: 30, PriceRetail: 25},
	}
	items := []entity.OrderItem{
		{MaterialID: vinylID, Length: 2, Width: 1, Qty: 1}, // 2 m2
		{MaterialID: flexiID, Qty: 4},                      // unit item
	}

	customer := &entity.Customer{Level: enum.LevelRetail}
	assert.Equal(t, 2*40.0+4*25.0, OrderTotal(items, customer, materials))

	// Anonymous order totals to zero.
	assert.Equal(t, 0.0, OrderTotal(items, nil, materials))
}

func TestOrderTotalSkipsUnresolvedMaterial(t *testing.T) {
	knownID := uuid.New()
	materials := map[uuid.UUID]entity.Material{
		knownID: {ID: knownID, PriceEndCustomer: 10},
	}
	items := []entity.OrderItem{
		{MaterialID: knownID, Qty: 2},
		{MaterialID: uuid.New(), Length: 5, Width: 5, Qty: 10},
	}
	customer := &entity.Customer{Level: enum.LevelEndCustomer}

	assert.Equal(t, 20.0, OrderTotal(items, customer, materials))
}

func TestOrderTotalIsDeterministic(t *testing.T) {
	materialID := uuid.New()
	materials := map[uuid.UUID]entity.Material{
		materialID: {ID: materialID, PriceGrosir: 12.5},
	}
	items := []entity.OrderItem{{MaterialID: materialID, Length: 1.2, Width: 0.8, Qty: 3}}
	customer := &entity.Customer{Level: enum.LevelGrosir}

	first := OrderTotal(items, customer, materials)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, OrderTotal(items, customer, materials))
	}
}

func TestBalance(t *testing.T) {
	assert.Equal(t, 40.0, Balance(100, 60))
	assert.Equal(t, 0.0, Balance(100, 100))

	// Overpayment floors at zero, it never goes negative.
	assert.Equal(t, 0.0, Balance(100, 150))
}

func TestConsumption(t *testing.T) {
	item := entity.OrderItem{Length: 2, Width: 1, Qty: 3}

	assert.Equal(t, 6.0, Consumption(item, nil))

	finishing := &entity.Finishing{ExtraLength: 0.1, ExtraWidth: 0.1}
	assert.InDelta(t, 2.1*1.1*3, Consumption(item, finishing), 1e-9)

	// Dimensionless items consume nothing without allowances.
	flat := entity.OrderItem{Qty: 5}
	assert.Equal(t, 0.0, Consumption(flat, nil))
}
