package ingress

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"delivery-storefront/storefront/internal/domain"
	"delivery-storefront/storefront/internal/service"
	"delivery-storefront/storefront/internal/store"

	"github.com/google/uuid"
)

type OrderUpdater interface {
	UpdateOrderStatus(orderID string, status domain.OrderStatus)
}

type NotificationSink interface {
	Add(n domain.Notification)
}

// PromoMarker is the dedup gate for promotion codes.
type PromoMarker interface {
	PromoKey(code string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

var (
	_ OrderUpdater     = (*store.Ledger)(nil)
	_ NotificationSink = (*store.Feed)(nil)
)

// Dispatcher fans inbound events into the ledger, the delivery synchronizer
// and the notification feed. Every event becomes exactly one notification;
// the first two kinds also drive a state mutation.
type Dispatcher struct {
	Orders OrderUpdater
	Sync   service.DeliverySync
	Feed   NotificationSink
	Promos PromoMarker            // optional
	Mirror service.LocationMirror // optional
	UserID string
}

func NewDispatcher(orders OrderUpdater, sync service.DeliverySync, feed NotificationSink, userID string) *Dispatcher {
	return &Dispatcher{Orders: orders, Sync: sync, Feed: feed, UserID: userID}
}

func (d *Dispatcher) Dispatch(ctx context.Context, env domain.Envelope) {
	switch env.Type {
	case domain.EventOrderStatusUpdate:
		var ev domain.OrderStatusEvent
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			log.Printf("Error unmarshaling order status event: %v", err)
			return
		}
		d.handleOrderStatus(ev)
	case domain.EventDeliveryUpdate:
		var ev domain.DeliveryUpdateEvent
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			log.Printf("Error unmarshaling delivery update event: %v", err)
			return
		}
		d.handleDeliveryUpdate(ctx, ev)
	case domain.EventPromotion:
		var ev domain.PromotionEvent
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			log.Printf("Error unmarshaling promotion event: %v", err)
			return
		}
		d.handlePromotion(ctx, ev)
	case domain.EventSystemNotification:
		var ev domain.SystemEvent
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			log.Printf("Error unmarshaling system event: %v", err)
			return
		}
		d.handleSystem(ev)
	default:
		log.Printf("Dropping event with unknown type %q", env.Type)
	}
}

func (d *Dispatcher) handleOrderStatus(ev domain.OrderStatusEvent) {
	d.Orders.UpdateOrderStatus(ev.OrderID, ev.Status)

	d.Feed.Add(d.notification(domain.NotificationOrderStatus,
		"Mise à jour de votre commande", ev.Message, map[string]interface{}{
			"order_id": ev.OrderID,
			"status":   string(ev.Status),
		}))
}

func (d *Dispatcher) handleDeliveryUpdate(ctx context.Context, ev domain.DeliveryUpdateEvent) {
	d.Sync.UpdateDeliveryStatus(ev.DeliveryID, ev.Status, ev.Location)

	if ev.Location != nil && d.Mirror != nil {
		if err := d.Mirror.MirrorLocation(ctx, ev.DeliveryID, *ev.Location); err != nil {
			log.Printf("Warning: failed to mirror delivery location: %v", err)
		}
	}

	data := map[string]interface{}{
		"delivery_id": ev.DeliveryID,
		"status":      string(ev.Status),
	}
	if ev.Location != nil {
		data["location"] = *ev.Location
	}
	d.Feed.Add(d.notification(domain.NotificationDeliveryUpdate,
		"Suivi de livraison", ev.Message, data))
}

func (d *Dispatcher) handlePromotion(ctx context.Context, ev domain.PromotionEvent) {
	if ev.PromoCode != "" && d.Promos != nil {
		key := d.Promos.PromoKey(ev.PromoCode)
		seen, err := d.Promos.Exists(ctx, key)
		if err != nil {
			log.Printf("Warning: failed to check promo marker: %v", err)
		}
		if seen {
			return
		}
		if err := d.Promos.SetMarker(ctx, key); err != nil {
			log.Printf("Warning: failed to mark promo code: %v", err)
		}
	}

	d.Feed.Add(d.notification(domain.NotificationPromotion,
		ev.Title, ev.Message, map[string]interface{}{
			"promo_code": ev.PromoCode,
		}))
}

func (d *Dispatcher) handleSystem(ev domain.SystemEvent) {
	d.Feed.Add(d.notification(domain.NotificationSystem,
		ev.Title, ev.Message, map[string]interface{}{
			"severity": ev.Severity,
		}))
}

func (d *Dispatcher) notification(t domain.NotificationType, title, message string, data map[string]interface{}) domain.Notification {
	return domain.Notification{
		ID:        uuid.NewString(),
		UserID:    d.UserID,
		Type:      t,
		Title:     title,
		Message:   message,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
