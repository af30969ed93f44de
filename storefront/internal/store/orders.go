package store

import (
	"sync"

	"delivery-storefront/storefront/internal/domain"
)

// Ledger is the append-only order history plus the single active delivery
// slot. Domain-rule rejections surface as store-level error text via
// LastError, not as returned faults.
type Ledger struct {
	mu       sync.Mutex
	orders   []domain.Order
	current  *domain.Order
	delivery *domain.Delivery
	lastErr  string
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddOrder prepends to history and makes the order current.
func (l *Ledger) AddOrder(order domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]domain.Order{order}, l.orders...)
	o := order
	l.current = &o
}

func (l *Ledger) SetCurrentOrder(order *domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.current = order
}

func (l *Ledger) SetActiveDelivery(delivery *domain.Delivery) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delivery = delivery
}

// UpdateOrderStatus updates the matching order and the current-order pointer.
// Any order moving to cancelled drops the tracked delivery, whichever order
// it belongs to.
func (l *Ledger) UpdateOrderStatus(orderID string, status domain.OrderStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.updateOrderStatusLocked(orderID, status)
}

// updateOrderStatusLocked carries the shared mutation so CancelOrder can run
// its guard and the write under one lock. Callers must hold the lock.
func (l *Ledger) updateOrderStatusLocked(orderID string, status domain.OrderStatus) {
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			l.orders[i].Status = status
		}
	}
	if l.current != nil && l.current.ID == orderID {
		l.current.Status = status
	}

	if status == domain.OrderCancelled {
		l.delivery = nil
	}
}

// CancelOrder is permitted only while the order is pending or confirmed.
// Otherwise the status is left unchanged and the rejection is recorded as
// store error text. Guard and mutation happen atomically; no status update
// can land in between.
func (l *Ledger) CancelOrder(orderID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found *domain.Order
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			found = &l.orders[i]
			break
		}
	}

	if found == nil || (found.Status != domain.OrderPending && found.Status != domain.OrderConfirmed) {
		l.lastErr = "order can no longer be cancelled"
		return
	}

	l.updateOrderStatusLocked(orderID, domain.OrderCancelled)
}

// SetDeliveryState merges a status and optional location into the active
// delivery. It reports whether the id matched; anything else is a no-op.
func (l *Ledger) SetDeliveryState(deliveryID string, status domain.DeliveryStatus, location *domain.LatLng) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.delivery == nil || l.delivery.ID != deliveryID {
		return false
	}
	l.delivery.Status = status
	if location != nil {
		l.delivery.CurrentLocation = *location
	}
	return true
}

// SetDeliveryLocation merges a coordinate without touching the status.
func (l *Ledger) SetDeliveryLocation(deliveryID string, location domain.LatLng) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.delivery == nil || l.delivery.ID != deliveryID {
		return false
	}
	l.delivery.CurrentLocation = location
	return true
}

func (l *Ledger) OrderByID(orderID string) (domain.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range l.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (l *Ledger) Orders() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Order(nil), l.orders...)
}

// ActiveOrders returns every order that has not reached a terminal status.
func (l *Ledger) ActiveOrders() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Order
	for _, o := range l.orders {
		if !o.Status.Terminal() {
			out = append(out, o)
		}
	}
	return out
}

func (l *Ledger) OrdersByCustomer(customerID string) []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Order
	for _, o := range l.orders {
		if o.Customer.ID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (l *Ledger) CurrentOrder() (domain.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return domain.Order{}, false
	}
	return *l.current, true
}

func (l *Ledger) ActiveDelivery() (domain.Delivery, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.delivery == nil {
		return domain.Delivery{}, false
	}
	return *l.delivery, true
}

func (l *Ledger) LastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func (l *Ledger) ClearError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = ""
}
