package pricing

import (
	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
)

// Tolerances for money and stock comparisons. Balances at or below
// BalanceTolerance are treated as settled; stock ledger sums are compared
// against the cached quantity within StockTolerance.
const (
	BalanceTolerance = 0.01
	StockTolerance   = 0.001
)

// ItemArea returns the billable area of an item. When either dimension is
// absent (zero or negative) the item is a unit item, e.g. a flat-fee job,
// and its area counts as 1 rather than 0.
func ItemArea(length, width float64) float64 {
	if length > 0 && width > 0 {
		return length * width
	}
	return 1
}

// ItemSubtotal returns the billable amount of a single item for the given
// customer tier. A nil material contributes 0.
func ItemSubtotal(item entity.OrderItem, material *entity.Material, customer *entity.Customer) float64 {
	if material == nil || customer == nil {
		return 0
	}
	return material.PriceFor(customer.Level) * ItemArea(item.Length, item.Width) * item.Qty
}

// OrderTotal computes the total billable amount of an order. It is pure:
// the same items, customer and material snapshot always produce the same
// total. Referential gaps fail soft, never error: an unresolved customer
// yields 0, an unresolved material skips that item, an unknown tier
// prices at 0.
func OrderTotal(items []entity.OrderItem, customer *entity.Customer, materials map[uuid.UUID]entity.Material) float64 {
	if customer == nil {
		return 0
	}
	var total float64
	for _, item := range items {
		material, ok := materials[item.MaterialID]
		if !ok {
			continue
		}
		total += ItemSubtotal(item, &material, customer)
	}
	return total
}

// Balance returns the outstanding amount of an order, floored at zero.
func Balance(total, paid float64) float64 {
	if due := total - paid; due > 0 {
		return due
	}
	return 0
}

// Consumption returns the material area an item consumes in production:
// the item footprint grown by the finishing allowances, times quantity.
// Items without a finishing consume their bare footprint.
func Consumption(item entity.OrderItem, finishing *entity.Finishing) float64 {
	var extraL, extraW float64
	if finishing != nil {
		extraL = finishing.ExtraLength
		extraW = finishing.ExtraWidth
	}
	return (item.Length + extraL) * (item.Width + extraW) * item.Qty
}
