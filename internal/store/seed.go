package store

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/enum"
)

const seedTableCount = 10

// Seed builds the demo fixture used on first run: four menu items
// with two modifiers each, ten tables (first two occupied), and four
// orders spanning the lifecycle across today, yesterday, and the edge
// of the 7-day window.
func Seed(now time.Time) (menu []domain.MenuItem, tables []domain.Table, orders []domain.Order) {
	pizza := domain.MenuItem{
		ID:       uuid.New(),
		Name:     "Margherita Pizza",
		Category: "Pizza",
		Price:    decimal.NewFromInt(12),
		Modifiers: []domain.Modifier{
			{Name: "Extra Cheese", PriceDelta: decimal.NewFromFloat(2.00)},
			{Name: "Gluten-Free Crust", PriceDelta: decimal.NewFromFloat(3.00)},
		},
	}
	burger := domain.MenuItem{
		ID:       uuid.New(),
		Name:     "Classic Burger",
		Category: "Mains",
		Price:    decimal.NewFromInt(11),
		Modifiers: []domain.Modifier{
			{Name: "Add Bacon", PriceDelta: decimal.NewFromFloat(1.50)},
			{Name: "No Cheese", PriceDelta: decimal.NewFromFloat(-0.50)},
		},
	}
	salad := domain.MenuItem{
		ID:       uuid.New(),
		Name:     "Caesar Salad",
		Category: "Salads",
		Price:    decimal.NewFromInt(9),
		Modifiers: []domain.Modifier{
			{Name: "Add Chicken", PriceDelta: decimal.NewFromFloat(3.00)},
			{Name: "Extra Parmesan", PriceDelta: decimal.NewFromFloat(1.00)},
		},
	}
	coffee := domain.MenuItem{
		ID:       uuid.New(),
		Name:     "Iced Coffee",
		Category: "Drinks",
		Price:    decimal.NewFromInt(4),
		Modifiers: []domain.Modifier{
			{Name: "Oat Milk", PriceDelta: decimal.NewFromFloat(0.75)},
			{Name: "Extra Shot", PriceDelta: decimal.NewFromFloat(1.00)},
		},
	}
	menu = []domain.MenuItem{pizza, burger, salad, coffee}

	tables = make([]domain.Table, seedTableCount)
	for i := range tables {
		status := enum.TableStatusAvailable
		if i < 2 {
			status = enum.TableStatusOccupied
		}
		tables[i] = domain.Table{
			ID:     uuid.New(),
			Name:   "Table " + strconv.Itoa(i+1),
			Status: status,
		}
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Most-recent-first, matching the store's prepend ordering. The
	// oldest order sits exactly on the inclusive 7-day window boundary
	// (local midnight six days back).
	orders = []domain.Order{
		{
			ID:      uuid.New(),
			TableID: tables[0].ID,
			Items: []domain.OrderItem{
				{MenuItemID: pizza.ID, ModifierName: "Extra Cheese", Qty: 1},
				{MenuItemID: coffee.ID, Qty: 2},
			},
			Status:    enum.OrderStatusInProgress,
			CreatedAt: now,
		},
		{
			ID:      uuid.New(),
			TableID: tables[1].ID,
			Items: []domain.OrderItem{
				{MenuItemID: burger.ID, Qty: 2},
			},
			Status:    enum.OrderStatusServed,
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:      uuid.New(),
			TableID: tables[2].ID,
			Items: []domain.OrderItem{
				{MenuItemID: salad.ID, ModifierName: "Add Chicken", Qty: 1},
				{MenuItemID: burger.ID, Qty: 1},
			},
			Status:    enum.OrderStatusPaid,
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:      uuid.New(),
			TableID: tables[3].ID,
			Items: []domain.OrderItem{
				{MenuItemID: pizza.ID, Qty: 2},
			},
			Status:    enum.OrderStatusPaid,
			CreatedAt: startOfToday.AddDate(0, 0, -6),
		},
	}

	return menu, tables, orders
}
