// Package domain holds the dashboard's core types. The store owns the
// collections; orders reference menu items and tables by id only, so
// deleting a menu item or table never cascades.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Modifier is a named price adjustment on a menu item. PriceDelta may
// be negative (e.g. "No Cheese").
type Modifier struct {
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// MenuItem is a sellable item. Modifier names are expected to be
// unique within an item; order lines reference them by name.
type MenuItem struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Modifiers []Modifier      `json:"modifiers"`
}

// Table is a physical table. Tables are created at seed time and
// never deleted; only their status changes.
type Table struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

// OrderItem is one line of an order. MenuItemID may dangle if the
// menu item is deleted later; pricing treats a dangling reference as
// a zero contribution. ModifierName is empty when no modifier applies.
type OrderItem struct {
	MenuItemID   uuid.UUID `json:"menu_item_id"`
	ModifierName string    `json:"modifier_name,omitempty"`
	Qty          int32     `json:"qty"`
}

// Order is a submitted order. The item list is fixed at creation.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	TableID   uuid.UUID   `json:"table_id"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// MenuIndex maps menu item ids to items for pricing lookups.
type MenuIndex map[uuid.UUID]MenuItem

// BuildMenuIndex builds a MenuIndex from a menu slice. Later entries
// win on duplicate ids, though ids are unique in practice.
func BuildMenuIndex(menu []MenuItem) MenuIndex {
	idx := make(MenuIndex, len(menu))
	for _, item := range menu {
		idx[item.ID] = item
	}
	return idx
}
