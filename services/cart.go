package services

import (
	"github.com/shopspring/decimal"

	"foodhub-kiosk/models"
)

// taxRate is the flat 5% canteen GST applied to the paid subtotal.
var taxRate = decimal.New(5, -2)

// AddItem returns the cart with one more unit of item. An existing line
// is incremented unless that would push it past limit, in which case the
// cart comes back unchanged; the UI reflects the unchanged state, no
// error is signaled. A new item always enters with quantity 1. The input
// cart is never mutated.
func AddItem(cart []models.CartLine, item models.MenuItem, limit int) []models.CartLine {
	for i, line := range cart {
		if line.ID != item.ID {
			continue
		}
		if line.Quantity >= limit {
			return cart
		}
		next := make([]models.CartLine, len(cart))
		copy(next, cart)
		next[i].Quantity++
		return next
	}
	next := make([]models.CartLine, len(cart)+1)
	copy(next, cart)
	next[len(cart)] = models.CartLine{MenuItem: item, Quantity: 1}
	return next
}

// RemoveItem returns the cart with one unit of the item taken off. A
// line at quantity 1 is dropped entirely; an unknown ID is a no-op. The
// input cart is never mutated.
func RemoveItem(cart []models.CartLine, itemID string) []models.CartLine {
	for i, line := range cart {
		if line.ID != itemID {
			continue
		}
		if line.Quantity <= 1 {
			next := make([]models.CartLine, 0, len(cart)-1)
			next = append(next, cart[:i]...)
			return append(next, cart[i+1:]...)
		}
		next := make([]models.CartLine, len(cart))
		copy(next, cart)
		next[i].Quantity--
		return next
	}
	return cart
}

// ItemQuantity returns how many units of the item the cart holds, zero
// when absent.
func ItemQuantity(cart []models.CartLine, itemID string) int {
	for _, line := range cart {
		if line.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

// IsAtLimit reports whether the item's quantity has reached the per-item
// cap. Derived from the cart alone, so the UI can disable the add button
// without tracking extra state.
func IsAtLimit(cart []models.CartLine, itemID string, limit int) bool {
	return ItemQuantity(cart, itemID) >= limit
}

// ComputeTotals derives the bill for a cart. Free lines never contribute
// to the subtotal, whatever their listed price. Tax is 5% of the
// subtotal rounded half away from zero to the whole rupee.
func ComputeTotals(cart []models.CartLine) models.Totals {
	var t models.Totals
	for _, line := range cart {
		t.TotalUnits += line.Quantity
		if line.IsFree {
			t.FreeLines = append(t.FreeLines, line)
			continue
		}
		t.PaidLines = append(t.PaidLines, line)
		t.Subtotal += line.Price * int64(line.Quantity)
	}
	t.Tax = decimal.NewFromInt(t.Subtotal).Mul(taxRate).Round(0).IntPart()
	t.Total = t.Subtotal + t.Tax
	return t
}
