// Package pricing computes order totals from the menu index.
//
// Lookups degrade silently: a line whose menu item no longer exists
// contributes zero, and an unknown modifier name contributes a zero
// delta. OrderTotal never fails.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tavola-pos/dashboard/internal/domain"
)

// OrderTotal returns the total for one order snapshot.
//
// Per line: unit price = base price + modifier delta (not floored at
// zero, deltas may be negative), contribution = unit price * qty.
func OrderTotal(o domain.Order, menu domain.MenuIndex) decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Items {
		item, ok := menu[line.MenuItemID]
		if !ok {
			continue
		}
		unit := item.Price.Add(modifierDelta(item, line.ModifierName))
		total = total.Add(unit.Mul(decimal.NewFromInt32(line.Qty)))
	}
	return total
}

// modifierDelta resolves a modifier by exact name match. Empty name
// means no modifier; an unknown name is treated the same way.
func modifierDelta(item domain.MenuItem, name string) decimal.Decimal {
	if name == "" {
		return decimal.Zero
	}
	for _, m := range item.Modifiers {
		if m.Name == name {
			return m.PriceDelta
		}
	}
	return decimal.Zero
}
