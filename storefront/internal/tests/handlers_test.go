package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "delivery-storefront/storefront/internal/api/http"
	"delivery-storefront/storefront/internal/domain"
	"delivery-storefront/storefront/internal/mocks"
	"delivery-storefront/storefront/internal/service"
	"delivery-storefront/storefront/internal/storage"
	"delivery-storefront/storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server *httptest.Server
	ledger *store.Ledger
	feed   *store.Feed
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	catalog := store.NewCatalog()
	catalog.SetRestaurants(storage.SeedRestaurants())
	cart := store.NewCart()
	ledger := store.NewLedger()
	feed := store.NewFeed()
	sync := service.NewSynchronizer(ledger)

	qr := mocks.NewQRGenerator(t)
	qr.On("Generate", mock.AnythingOfType("string")).Return([]byte("png"), nil).Maybe()
	checkout := service.NewCheckout(cart, ledger, sync, qr, storage.SeedCustomer(), storage.SeedCouriers())

	handler := &httpapi.Handler{
		Catalog:  catalog,
		Cart:     cart,
		Ledger:   ledger,
		Feed:     feed,
		Checkout: checkout,
		Menus:    storage.SeedSource{},
	}
	server := httptest.NewServer(httpapi.NewRouter(handler))
	t.Cleanup(server.Close)

	return &testServer{server: server, ledger: ledger, feed: feed}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.server.URL+path, &buf)
	require.NoError(t, err)
	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHandlers_ListRestaurantsWithFilters(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/restaurants?min_rating=4.5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var restaurants []domain.Restaurant
	decode(t, resp, &restaurants)
	assert.Equal(t, []string{"Restaurant Le Bénin", "Chez Maman"}, names(restaurants))
}

func TestHandlers_GetRestaurantAndMenu(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/restaurants/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var restaurant domain.Restaurant
	decode(t, resp, &restaurant)
	assert.Equal(t, "Chez Maman", restaurant.Name)

	resp = ts.do(t, http.MethodGet, "/api/restaurants/2/menu", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []domain.MenuItem
	decode(t, resp, &items)
	assert.Len(t, items, 2)

	resp = ts.do(t, http.MethodGet, "/api/restaurants/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type cartResponse struct {
	Items      []domain.CartItem  `json:"items"`
	Restaurant *domain.Restaurant `json:"restaurant"`
	Subtotal   int                `json:"subtotal"`
	Total      int                `json:"total"`
	ItemCount  int                `json:"item_count"`
}

func addItemPayload(menuItemID, restaurantID string, quantity int, replace bool) map[string]interface{} {
	return map[string]interface{}{
		"menu_item_id":  menuItemID,
		"restaurant_id": restaurantID,
		"quantity":      quantity,
		"replace":       replace,
	}
}

func TestHandlers_CartConflictThenReplace(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/cart/items", addItemPayload("1-1", "1", 2, false))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A second restaurant is rejected until the client confirms.
	resp = ts.do(t, http.MethodPost, "/api/cart/items", addItemPayload("2-1", "2", 1, false))
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/cart/items", addItemPayload("2-1", "2", 1, true))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cart cartResponse
	decode(t, resp, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2-1", cart.Items[0].MenuItem.ID)
	require.NotNil(t, cart.Restaurant)
	assert.Equal(t, "2", cart.Restaurant.ID)
	assert.Equal(t, 3000+750, cart.Total)
}

func TestHandlers_UnavailableMenuItemRejected(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/cart/items", addItemPayload("3-2", "3", 1, false))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlers_CheckoutFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/cart/items", addItemPayload("1-1", "1", 2, false))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/checkout", map[string]string{"payment_method": "cash"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order domain.Order
	decode(t, resp, &order)
	assert.Equal(t, 2*2500+500, order.TotalAmount)
	assert.Equal(t, domain.PaymentCash, order.PaymentMethod)

	// The cart is empty again and the delivery is live.
	resp = ts.do(t, http.MethodGet, "/api/cart", nil)
	var cart cartResponse
	decode(t, resp, &cart)
	assert.Empty(t, cart.Items)

	resp = ts.do(t, http.MethodGet, "/api/delivery", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var delivery domain.Delivery
	decode(t, resp, &delivery)
	assert.Equal(t, order.ID, delivery.OrderID)

	resp = ts.do(t, http.MethodGet, "/api/orders/"+order.ID+"/qrcode", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestHandlers_CheckoutEmptyCart(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/checkout", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlers_CancelOrderGuard(t *testing.T) {
	ts := newTestServer(t)
	ts.ledger.AddOrder(fixtureOrder("o1", domain.OrderDelivering))
	ts.ledger.AddOrder(fixtureOrder("o2", domain.OrderPending))

	resp := ts.do(t, http.MethodPost, "/api/orders/o1/cancel", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "order can no longer be cancelled", body["error"])

	resp = ts.do(t, http.MethodPost, "/api/orders/o2/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var order domain.Order
	decode(t, resp, &order)
	assert.Equal(t, domain.OrderCancelled, order.Status)

	resp = ts.do(t, http.MethodPost, "/api/orders/missing/cancel", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlers_ActiveDeliveryNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/delivery", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlers_Notifications(t *testing.T) {
	ts := newTestServer(t)
	for i := 1; i <= 3; i++ {
		ts.feed.Add(notification(fmt.Sprintf("n%d", i), false))
	}

	resp := ts.do(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listing struct {
		Notifications []domain.Notification `json:"notifications"`
		UnreadCount   int                   `json:"unread_count"`
	}
	decode(t, resp, &listing)
	assert.Len(t, listing.Notifications, 3)
	assert.Equal(t, 3, listing.UnreadCount)

	resp = ts.do(t, http.MethodPost, "/api/notifications/n1/read", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var counts map[string]int
	decode(t, resp, &counts)
	assert.Equal(t, 2, counts["unread_count"])

	resp = ts.do(t, http.MethodPost, "/api/notifications/read-all", nil)
	decode(t, resp, &counts)
	assert.Equal(t, 0, counts["unread_count"])

	resp = ts.do(t, http.MethodDelete, "/api/notifications/n2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, ts.feed.Notifications(), 2)
}
