package enum

// ── Order lifecycle (forward-only: in_progress → served → paid) ──

const (
	OrderStatusInProgress = "in_progress"
	OrderStatusServed     = "served"
	OrderStatusPaid       = "paid"
)

// ── Table states (driven by order events + explicit staff action) ──

const (
	TableStatusAvailable     = "available"
	TableStatusOccupied      = "occupied"
	TableStatusNeedsCleaning = "needs_cleaning"
)

// ValidOrderStatus checks if the given string is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusInProgress, OrderStatusServed, OrderStatusPaid:
		return true
	}
	return false
}

// ValidTableStatus checks if the given string is a known table status.
func ValidTableStatus(s string) bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied, TableStatusNeedsCleaning:
		return true
	}
	return false
}

// OrderStatusRank returns the position of a status in the lifecycle
// (in_progress=0, served=1, paid=2, unknown=-1). The composing layer
// uses it to reject backward transitions.
func OrderStatusRank(s string) int {
	switch s {
	case OrderStatusInProgress:
		return 0
	case OrderStatusServed:
		return 1
	case OrderStatusPaid:
		return 2
	}
	return -1
}
