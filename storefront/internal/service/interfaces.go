package service

import (
	"context"

	"delivery-storefront/storefront/internal/domain"
	"delivery-storefront/storefront/internal/store"
)

// DeliveryLedger is the slice of the order ledger the synchronizer drives.
// The synchronizer never reaches into the store directly.
type DeliveryLedger interface {
	ActiveDelivery() (domain.Delivery, bool)
	SetDeliveryState(deliveryID string, status domain.DeliveryStatus, location *domain.LatLng) bool
	SetDeliveryLocation(deliveryID string, location domain.LatLng) bool
	UpdateOrderStatus(orderID string, status domain.OrderStatus)
}

// DeliverySync is what the tracker and the event ingress call into.
type DeliverySync interface {
	UpdateDeliveryStatus(deliveryID string, status domain.DeliveryStatus, location *domain.LatLng)
	UpdateLocation(deliveryID string, location domain.LatLng)
}

// CheckoutCart is the slice of the cart the checkout flow consumes.
type CheckoutCart interface {
	Items() []domain.CartItem
	Restaurant() (domain.Restaurant, bool)
	Totals() store.Totals
	Clear()
}

// OrderBook is the slice of the ledger the checkout flow writes to.
type OrderBook interface {
	AddOrder(order domain.Order)
	SetActiveDelivery(delivery *domain.Delivery)
}

type QRGenerator interface {
	Generate(trackingNumber string) ([]byte, error)
}

// LocationMirror pushes live courier coordinates to an external snapshot
// store (redis). A nil mirror disables it.
type LocationMirror interface {
	MirrorLocation(ctx context.Context, deliveryID string, location domain.LatLng) error
}

var (
	_ DeliveryLedger = (*store.Ledger)(nil)
	_ CheckoutCart   = (*store.Cart)(nil)
	_ OrderBook      = (*store.Ledger)(nil)
	_ DeliverySync   = (*Synchronizer)(nil)
)
