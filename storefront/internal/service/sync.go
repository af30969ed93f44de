package service

import (
	"delivery-storefront/storefront/internal/domain"
)

// orderStatusFor maps every delivery status to the order status it implies.
var orderStatusFor = map[domain.DeliveryStatus]domain.OrderStatus{
	domain.DeliveryAssigned:            domain.OrderConfirmed,
	domain.DeliveryHeadingToRestaurant: domain.OrderConfirmed,
	domain.DeliveryAtRestaurant:        domain.OrderPreparing,
	domain.DeliveryPickingUp:           domain.OrderReadyForPickup,
	domain.DeliveryDelivering:          domain.OrderDelivering,
	domain.DeliveryArrived:             domain.OrderDelivering,
	domain.DeliveryCompleted:           domain.OrderDelivered,
	domain.DeliveryCancelled:           domain.OrderCancelled,
}

// Synchronizer keeps the order ledger in step with the tracked delivery. It
// accepts whatever status an event carries; there is no transition table.
type Synchronizer struct {
	ledger DeliveryLedger
}

func NewSynchronizer(ledger DeliveryLedger) *Synchronizer {
	return &Synchronizer{ledger: ledger}
}

// UpdateDeliveryStatus merges the status (and location, when supplied) into
// the active delivery, then applies the mapped order status. Events for any
// other delivery id are ignored.
func (s *Synchronizer) UpdateDeliveryStatus(deliveryID string, status domain.DeliveryStatus, location *domain.LatLng) {
	delivery, ok := s.ledger.ActiveDelivery()
	if !ok || delivery.ID != deliveryID {
		return
	}

	if !s.ledger.SetDeliveryState(deliveryID, status, location) {
		return
	}

	if orderStatus, ok := orderStatusFor[status]; ok {
		s.ledger.UpdateOrderStatus(delivery.OrderID, orderStatus)
	}
}

// UpdateLocation merges a coordinate only. Location ticks arrive on a timer
// independent of status changes and must never alter status.
func (s *Synchronizer) UpdateLocation(deliveryID string, location domain.LatLng) {
	s.ledger.SetDeliveryLocation(deliveryID, location)
}
