package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"delivery-storefront/storefront/internal/domain"
	"delivery-storefront/storefront/internal/ingress"
	"delivery-storefront/storefront/internal/mocks"

	"github.com/stretchr/testify/mock"
)

func envelope(t *testing.T, eventType string, payload interface{}) domain.Envelope {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return domain.Envelope{Type: eventType, Payload: body}
}

func TestDispatcher_OrderStatusUpdate(t *testing.T) {
	orders := mocks.NewOrderUpdater(t)
	sync := mocks.NewDeliverySync(t)
	feed := mocks.NewNotificationSink(t)
	dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")

	orders.On("UpdateOrderStatus", "o1", domain.OrderPreparing).Once()
	feed.On("Add", mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationOrderStatus && n.UserID == "customer_1" && !n.Read
	})).Once()

	dispatcher.Dispatch(context.Background(), envelope(t, domain.EventOrderStatusUpdate, domain.OrderStatusEvent{
		OrderID: "o1",
		Status:  domain.OrderPreparing,
		Message: "Votre commande est en préparation",
	}))
}

func TestDispatcher_DeliveryUpdate(t *testing.T) {
	orders := mocks.NewOrderUpdater(t)
	sync := mocks.NewDeliverySync(t)
	feed := mocks.NewNotificationSink(t)
	dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")

	location := &domain.LatLng{Lat: 6.5, Lng: 2.7}
	sync.On("UpdateDeliveryStatus", "d1", domain.DeliveryDelivering, location).Once()
	feed.On("Add", mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationDeliveryUpdate
	})).Once()

	dispatcher.Dispatch(context.Background(), envelope(t, domain.EventDeliveryUpdate, domain.DeliveryUpdateEvent{
		DeliveryID: "d1",
		Status:     domain.DeliveryDelivering,
		Location:   location,
		Message:    "En route",
	}))
	orders.AssertNotCalled(t, "UpdateOrderStatus")
}

func TestDispatcher_PromotionDedup(t *testing.T) {
	ctx := context.Background()

	t.Run("first_delivery_surfaces", func(t *testing.T) {
		orders := mocks.NewOrderUpdater(t)
		sync := mocks.NewDeliverySync(t)
		feed := mocks.NewNotificationSink(t)
		promos := mocks.NewPromoMarker(t)
		dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")
		dispatcher.Promos = promos

		promos.On("PromoKey", "MERCI20").Return("promo:MERCI20").Once()
		promos.On("Exists", ctx, "promo:MERCI20").Return(false, nil).Once()
		promos.On("SetMarker", ctx, "promo:MERCI20").Return(nil).Once()
		feed.On("Add", mock.MatchedBy(func(n domain.Notification) bool {
			return n.Type == domain.NotificationPromotion
		})).Once()

		dispatcher.Dispatch(ctx, envelope(t, domain.EventPromotion, domain.PromotionEvent{
			Title: "-20%", Message: "Code MERCI20", PromoCode: "MERCI20",
		}))
	})

	t.Run("marker_check_failure_falls_open", func(t *testing.T) {
		orders := mocks.NewOrderUpdater(t)
		sync := mocks.NewDeliverySync(t)
		feed := mocks.NewNotificationSink(t)
		promos := mocks.NewPromoMarker(t)
		dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")
		dispatcher.Promos = promos

		promos.On("PromoKey", "MERCI20").Return("promo:MERCI20").Once()
		promos.On("Exists", ctx, "promo:MERCI20").Return(false, errors.New("redis: connection refused")).Once()
		promos.On("SetMarker", ctx, "promo:MERCI20").Return(nil).Once()
		feed.On("Add", mock.MatchedBy(func(n domain.Notification) bool {
			return n.Type == domain.NotificationPromotion
		})).Once()

		dispatcher.Dispatch(ctx, envelope(t, domain.EventPromotion, domain.PromotionEvent{
			Title: "-20%", Message: "Code MERCI20", PromoCode: "MERCI20",
		}))
	})

	t.Run("redelivery_skipped", func(t *testing.T) {
		orders := mocks.NewOrderUpdater(t)
		sync := mocks.NewDeliverySync(t)
		feed := mocks.NewNotificationSink(t)
		promos := mocks.NewPromoMarker(t)
		dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")
		dispatcher.Promos = promos

		promos.On("PromoKey", "MERCI20").Return("promo:MERCI20").Once()
		promos.On("Exists", ctx, "promo:MERCI20").Return(true, nil).Once()

		dispatcher.Dispatch(ctx, envelope(t, domain.EventPromotion, domain.PromotionEvent{
			Title: "-20%", Message: "Code MERCI20", PromoCode: "MERCI20",
		}))
		feed.AssertNotCalled(t, "Add")
	})
}

func TestDispatcher_SystemNotification(t *testing.T) {
	orders := mocks.NewOrderUpdater(t)
	sync := mocks.NewDeliverySync(t)
	feed := mocks.NewNotificationSink(t)
	dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")

	feed.On("Add", mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationSystem && n.Data["severity"] == "warning"
	})).Once()

	dispatcher.Dispatch(context.Background(), envelope(t, domain.EventSystemNotification, domain.SystemEvent{
		Title: "Maintenance", Message: "dimanche", Severity: "warning",
	}))
}

func TestDispatcher_UnknownTypeDropped(t *testing.T) {
	orders := mocks.NewOrderUpdater(t)
	sync := mocks.NewDeliverySync(t)
	feed := mocks.NewNotificationSink(t)
	dispatcher := ingress.NewDispatcher(orders, sync, feed, "customer_1")

	dispatcher.Dispatch(context.Background(), domain.Envelope{Type: "mystery", Payload: []byte(`{}`)})
	feed.AssertNotCalled(t, "Add")
	orders.AssertNotCalled(t, "UpdateOrderStatus")
	sync.AssertNotCalled(t, "UpdateDeliveryStatus")
}
