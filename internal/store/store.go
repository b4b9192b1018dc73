// Package store is the sole owner of the three mutable collections:
// menu items, tables, and orders. All mutation goes through its API;
// readers get copied snapshots and never see internal slices.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/enum"
)

// Change event names passed to the OnChange hook.
const (
	EventMenuItemCreated    = "menu_item_created"
	EventMenuItemUpdated    = "menu_item_updated"
	EventMenuItemDeleted    = "menu_item_deleted"
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
	EventTableCleaned       = "table_cleaned"
)

// orderEvent drives the table-status coupling. Every order transition
// that touches a table goes through applyOrderEvent so the imperative
// table updates live in exactly one place.
type orderEvent int

const (
	orderOpened orderEvent = iota
	orderPaid
)

// Store holds the collections behind one mutex. Each mutator applies
// atomically under the lock; the ticker and HTTP handlers are the
// concurrent callers.
type Store struct {
	mu     sync.RWMutex
	menu   []domain.MenuItem
	tables []domain.Table
	orders []domain.Order

	onChange func(event string)
	now      func() time.Time
}

// New creates a Store owning the given collections. The slices are
// taken over by the store; callers must not retain them.
func New(menu []domain.MenuItem, tables []domain.Table, orders []domain.Order) *Store {
	return &Store{
		menu:   menu,
		tables: tables,
		orders: orders,
		now:    time.Now,
	}
}

// SetOnChange registers a hook invoked after every successful
// mutation, outside the critical section. Used by main to trigger the
// persistence save and the websocket broadcast.
func (s *Store) SetOnChange(fn func(event string)) {
	s.onChange = fn
}

func (s *Store) notify(event string) {
	if s.onChange != nil {
		s.onChange(event)
	}
}

// --- Snapshot accessors ---

// Menu returns a copy of the menu list in insertion order.
func (s *Store) Menu() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// MenuIndex returns the menu keyed by id.
func (s *Store) MenuIndex() domain.MenuIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.BuildMenuIndex(s.menu)
}

// Tables returns a copy of the table list.
func (s *Store) Tables() []domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

// Orders returns a copy of the order list, most-recent-first.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Order returns the order with the given id, if present.
func (s *Store) Order(id uuid.UUID) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// --- Menu mutators ---

// CreateMenuItem assigns a fresh id to the draft and appends it to
// the menu. Always succeeds.
func (s *Store) CreateMenuItem(draft domain.MenuItem) domain.MenuItem {
	s.mu.Lock()
	draft.ID = uuid.New()
	draft.Modifiers = cloneModifiers(draft.Modifiers)
	s.menu = append(s.menu, draft)
	s.mu.Unlock()

	s.notify(EventMenuItemCreated)
	return draft
}

// UpdateMenuItem replaces the entry matching item.ID. Silent no-op
// when the id is unknown.
func (s *Store) UpdateMenuItem(item domain.MenuItem) {
	s.mu.Lock()
	replaced := false
	for i := range s.menu {
		if s.menu[i].ID == item.ID {
			item.Modifiers = cloneModifiers(item.Modifiers)
			s.menu[i] = item
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.notify(EventMenuItemUpdated)
	}
}

// DeleteMenuItem removes the matching entry. Orders referencing the
// item keep their dangling id; pricing treats it as a zero line.
func (s *Store) DeleteMenuItem(id uuid.UUID) {
	s.mu.Lock()
	removed := false
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu = append(s.menu[:i], s.menu[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify(EventMenuItemDeleted)
	}
}

// --- Order mutators ---

// CreateOrder builds a new in_progress order and prepends it, keeping
// the collection most-recent-first. The referenced table becomes
// occupied unconditionally, whatever its prior status.
//
// Empty items or a nil table id silently return the zero Order; the
// composing caller is expected to validate before it gets here.
func (s *Store) CreateOrder(tableID uuid.UUID, items []domain.OrderItem) domain.Order {
	if len(items) == 0 || tableID == uuid.Nil {
		return domain.Order{}
	}

	s.mu.Lock()
	o := domain.Order{
		ID:        uuid.New(),
		TableID:   tableID,
		Items:     cloneItems(items),
		Status:    enum.OrderStatusInProgress,
		CreatedAt: s.now(),
	}
	s.orders = append([]domain.Order{o}, s.orders...)
	s.applyOrderEvent(orderOpened, tableID)
	s.mu.Unlock()

	s.notify(EventOrderCreated)
	return o
}

// UpdateOrderStatus replaces the status of the matching order. No
// transition-legality check here; the composing layer disciplines
// forward-only transitions. Marking an order paid flips its table to
// needs_cleaning unconditionally.
func (s *Store) UpdateOrderStatus(orderID uuid.UUID, status string) (domain.Order, bool) {
	s.mu.Lock()
	var updated domain.Order
	found := false
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			updated = s.orders[i]
			found = true
			break
		}
	}
	if found && status == enum.OrderStatusPaid {
		s.applyOrderEvent(orderPaid, updated.TableID)
	}
	s.mu.Unlock()

	if found {
		s.notify(EventOrderStatusUpdated)
	}
	return updated, found
}

// AdvanceServedOrder moves the first served order (in collection
// order) to paid, with the same table side effect as a manual mark
// paid. Used by the demo ticker; no-op when nothing is served.
func (s *Store) AdvanceServedOrder() (domain.Order, bool) {
	s.mu.Lock()
	var advanced domain.Order
	found := false
	for i := range s.orders {
		if s.orders[i].Status == enum.OrderStatusServed {
			s.orders[i].Status = enum.OrderStatusPaid
			advanced = s.orders[i]
			found = true
			break
		}
	}
	if found {
		s.applyOrderEvent(orderPaid, advanced.TableID)
	}
	s.mu.Unlock()

	if found {
		s.notify(EventOrderStatusUpdated)
	}
	return advanced, found
}

// --- Table mutators ---

// MarkTableClean sets the table to available, unconditionally and
// regardless of any open orders on it.
func (s *Store) MarkTableClean(tableID uuid.UUID) bool {
	s.mu.Lock()
	changed := s.setTableStatus(tableID, enum.TableStatusAvailable)
	s.mu.Unlock()

	if changed {
		s.notify(EventTableCleaned)
	}
	return changed
}

// applyOrderEvent is the single dispatch point for order-driven table
// updates. Table status is a manually synchronized mirror of order
// events, not a projection; keeping the writes here is what makes the
// mirror consistent. Callers must hold s.mu.
//
// Known quirk, preserved deliberately: with several orders on one
// table, paying any of them flips the table to needs_cleaning even if
// another order on it is still in progress.
func (s *Store) applyOrderEvent(ev orderEvent, tableID uuid.UUID) {
	switch ev {
	case orderOpened:
		s.setTableStatus(tableID, enum.TableStatusOccupied)
	case orderPaid:
		s.setTableStatus(tableID, enum.TableStatusNeedsCleaning)
	}
}

// setTableStatus updates the table if it exists. Unknown table ids
// are ignored: orders hold weak references only.
func (s *Store) setTableStatus(tableID uuid.UUID, status string) bool {
	for i := range s.tables {
		if s.tables[i].ID == tableID {
			s.tables[i].Status = status
			return true
		}
	}
	return false
}

// --- helpers ---

func cloneItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}

func cloneModifiers(mods []domain.Modifier) []domain.Modifier {
	if mods == nil {
		return nil
	}
	out := make([]domain.Modifier, len(mods))
	copy(out, mods)
	return out
}
