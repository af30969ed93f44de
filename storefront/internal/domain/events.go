package domain

import "encoding/json"

// Event types carried on the ingress topic.
const (
	EventOrderStatusUpdate  = "order_status_update"
	EventDeliveryUpdate     = "delivery_update"
	EventPromotion          = "promotion"
	EventSystemNotification = "system_notification"
)

// Envelope is the wire shape of every ingress message: a type tag plus the
// type-specific payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type OrderStatusEvent struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
	Message string      `json:"message"`
}

type DeliveryUpdateEvent struct {
	DeliveryID string         `json:"delivery_id"`
	Status     DeliveryStatus `json:"status"`
	Location   *LatLng        `json:"location,omitempty"`
	Message    string         `json:"message"`
}

type PromotionEvent struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	PromoCode string `json:"promo_code,omitempty"`
}

type SystemEvent struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}
