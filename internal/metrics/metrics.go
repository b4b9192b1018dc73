// Package metrics derives dashboard aggregates from an order
// snapshot. Everything is recomputed per query; at demo scale there
// is no point maintaining incremental indexes.
//
// All functions take an explicit "now" so callers (and tests) control
// the window anchor.
package metrics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/enum"
	"github.com/tavola-pos/dashboard/internal/pricing"
)

// TrendDays is the length of the rolling trend series.
const TrendDays = 14

// TopSellerLimit caps the top-seller ranking.
const TopSellerLimit = 7

// Summary holds revenue for the three dashboard periods.
type Summary struct {
	Today      decimal.Decimal
	Last7Days  decimal.Decimal
	Last30Days decimal.Decimal
}

// Seller is one row of the top-seller ranking.
type Seller struct {
	MenuItemID uuid.UUID
	Name       string
	Qty        int64
}

// TrendPoint is one day's revenue in the trend series.
type TrendPoint struct {
	Date  time.Time
	Total decimal.Decimal
}

// revenueRealized reports whether an order counts toward sales.
// in_progress orders are excluded until they are served.
func revenueRealized(status string) bool {
	return status == enum.OrderStatusServed || status == enum.OrderStatusPaid
}

// SalesSummary sums order totals over the three trailing windows,
// anchored to now. "Today" is the same calendar day; "last N days" is
// the inclusive window [startOfToday-(N-1)d, now].
func SalesSummary(orders []domain.Order, menu domain.MenuIndex, now time.Time) Summary {
	start7 := startOfDay(now).AddDate(0, 0, -6)
	start30 := startOfDay(now).AddDate(0, 0, -29)

	s := Summary{Today: decimal.Zero, Last7Days: decimal.Zero, Last30Days: decimal.Zero}
	for _, o := range orders {
		if !revenueRealized(o.Status) {
			continue
		}
		total := pricing.OrderTotal(o, menu)
		if sameDay(o.CreatedAt, now) {
			s.Today = s.Today.Add(total)
		}
		if inWindow(o.CreatedAt, start7, now) {
			s.Last7Days = s.Last7Days.Add(total)
		}
		if inWindow(o.CreatedAt, start30, now) {
			s.Last30Days = s.Last30Days.Add(total)
		}
	}
	return s
}

// ActiveOrders returns the in_progress orders in collection order.
// The store prepends on create, so this is most-recent-first.
func ActiveOrders(orders []domain.Order) []domain.Order {
	var active []domain.Order
	for _, o := range orders {
		if o.Status == enum.OrderStatusInProgress {
			active = append(active, o)
		}
	}
	return active
}

// TopSellers ranks menu items by cumulative ordered quantity across
// ALL orders regardless of status (popularity, not revenue). Names of
// deleted menu items fall back to the raw id string. Ties keep
// encounter order; the result is capped at TopSellerLimit.
func TopSellers(orders []domain.Order, menu domain.MenuIndex) []Seller {
	counts := make(map[uuid.UUID]int64)
	var encounter []uuid.UUID
	for _, o := range orders {
		for _, line := range o.Items {
			if _, seen := counts[line.MenuItemID]; !seen {
				encounter = append(encounter, line.MenuItemID)
			}
			counts[line.MenuItemID] += int64(line.Qty)
		}
	}

	sellers := make([]Seller, 0, len(encounter))
	for _, id := range encounter {
		name := id.String()
		if item, ok := menu[id]; ok {
			name = item.Name
		}
		sellers = append(sellers, Seller{MenuItemID: id, Name: name, Qty: counts[id]})
	}

	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].Qty > sellers[j].Qty
	})
	if len(sellers) > TopSellerLimit {
		sellers = sellers[:TopSellerLimit]
	}
	return sellers
}

// Trend produces the rolling TrendDays series, oldest first, newest
// (today) last. Each bucket sums served/paid orders created on that
// exact calendar day, rounded to 2 decimal places.
func Trend(orders []domain.Order, menu domain.MenuIndex, now time.Time) []TrendPoint {
	points := make([]TrendPoint, TrendDays)
	for i := range points {
		day := startOfDay(now).AddDate(0, 0, -(TrendDays - 1 - i))
		total := decimal.Zero
		for _, o := range orders {
			if !revenueRealized(o.Status) {
				continue
			}
			if sameDay(o.CreatedAt, day) {
				total = total.Add(pricing.OrderTotal(o, menu))
			}
		}
		points[i] = TrendPoint{Date: day, Total: total.Round(2)}
	}
	return points
}

// --- Date helpers ---

// startOfDay returns local midnight of t's calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay checks whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// inWindow checks start <= t <= end, both ends inclusive.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
