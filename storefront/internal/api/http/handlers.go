package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"delivery-storefront/storefront/internal/domain"
	"delivery-storefront/storefront/internal/service"
	"delivery-storefront/storefront/internal/store"

	"github.com/gorilla/mux"
)

type MenuSource interface {
	ListMenuItems(restaurantID string) ([]domain.MenuItem, error)
}

type Handler struct {
	Catalog  *store.Catalog
	Cart     *store.Cart
	Ledger   *store.Ledger
	Feed     *store.Feed
	Checkout *service.Checkout
	Menus    MenuSource
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/active", h.listActiveOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQR).Methods("GET")

	r.HandleFunc("/api/delivery", h.getActiveDelivery).Methods("GET")

	r.HandleFunc("/api/notifications", h.listNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/read-all", h.markAllRead).Methods("POST")
	r.HandleFunc("/api/notifications/{id}/read", h.markRead).Methods("POST")
	r.HandleFunc("/api/notifications/{id}", h.removeNotification).Methods("DELETE")
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := domain.FilterOptions{
		Cuisine: q.Get("cuisine"),
		SortBy:  domain.SortBy(q.Get("sort")),
	}
	if v := q.Get("min_rating"); v != "" {
		filters.Rating, _ = strconv.ParseFloat(v, 64)
	}
	if q.Get("min_fee") != "" || q.Get("max_fee") != "" {
		min, _ := strconv.Atoi(q.Get("min_fee"))
		max, err := strconv.Atoi(q.Get("max_fee"))
		if err != nil || max == 0 {
			max = int(^uint(0) >> 1)
		}
		filters.PriceRange = &domain.PriceRange{Min: min, Max: max}
	}

	if q.Get("lat") != "" && q.Get("lng") != "" {
		lat, _ := strconv.ParseFloat(q.Get("lat"), 64)
		lng, _ := strconv.ParseFloat(q.Get("lng"), 64)
		h.Catalog.SetLocation(lat, lng)
	}
	h.Catalog.SetQuery(q.Get("query"))
	h.Catalog.SetFilters(filters)

	writeJSON(w, http.StatusOK, h.Catalog.Filtered())
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.Catalog.ByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.Catalog.ByID(id); !ok {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	items, err := h.Menus.ListMenuItems(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type cartView struct {
	Items      []domain.CartItem  `json:"items"`
	Restaurant *domain.Restaurant `json:"restaurant,omitempty"`
	store.Totals
	ItemCount int `json:"item_count"`
}

func (h *Handler) cartView() cartView {
	view := cartView{
		Items:     h.Cart.Items(),
		Totals:    h.Cart.Totals(),
		ItemCount: h.Cart.ItemCount(),
	}
	if restaurant, ok := h.Cart.Restaurant(); ok {
		view.Restaurant = &restaurant
	}
	return view
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MenuItemID          string `json:"menu_item_id"`
		RestaurantID        string `json:"restaurant_id"`
		Quantity            int    `json:"quantity"`
		SpecialInstructions string `json:"special_instructions"`
		Replace             bool   `json:"replace"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	restaurant, ok := h.Catalog.ByID(payload.RestaurantID)
	if !ok {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}

	items, err := h.Menus.ListMenuItems(payload.RestaurantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var item *domain.MenuItem
	for i := range items {
		if items[i].ID == payload.MenuItemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	if !item.Available {
		writeError(w, http.StatusBadRequest, "menu item is not available")
		return
	}

	if payload.Replace {
		h.Cart.ReplaceWith(*item, restaurant, payload.Quantity, payload.SpecialInstructions)
	} else if err := h.Cart.AddItem(*item, restaurant, payload.Quantity, payload.SpecialInstructions); err != nil {
		if errors.Is(err, store.ErrDifferentRestaurant) {
			// The client confirms by re-sending with replace=true.
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, h.cartView())
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity            *int    `json:"quantity"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := mux.Vars(r)["id"]
	if payload.Quantity != nil {
		h.Cart.UpdateQuantity(id, *payload.Quantity)
	}
	if payload.SpecialInstructions != nil {
		h.Cart.UpdateInstructions(id, *payload.SpecialInstructions)
	}
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.RemoveItem(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.PaymentMethod == "" {
		payload.PaymentMethod = domain.PaymentMobileMoney
	}

	order, err := h.Checkout.PlaceOrder(payload.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoCourier):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		writeJSON(w, http.StatusOK, h.Ledger.OrdersByCustomer(customerID))
		return
	}
	writeJSON(w, http.StatusOK, h.Ledger.Orders())
}

func (h *Handler) listActiveOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.ActiveOrders())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Ledger.OrderByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.Ledger.OrderByID(id); !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	h.Ledger.ClearError()
	h.Ledger.CancelOrder(id)
	if msg := h.Ledger.LastError(); msg != "" {
		writeError(w, http.StatusConflict, msg)
		return
	}

	order, _ := h.Ledger.OrderByID(id)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQR(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Ledger.OrderByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	png, err := h.Checkout.QRCode(order.ID, order.TrackingNumber)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getActiveDelivery(w http.ResponseWriter, r *http.Request) {
	delivery, ok := h.Ledger.ActiveDelivery()
	if !ok {
		writeError(w, http.StatusNotFound, "no active delivery")
		return
	}
	writeJSON(w, http.StatusOK, delivery)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.Feed.Notifications(),
		"unread_count":  h.Feed.UnreadCount(),
	})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	h.Feed.MarkAsRead(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]int{"unread_count": h.Feed.UnreadCount()})
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	h.Feed.MarkAllAsRead()
	writeJSON(w, http.StatusOK, map[string]int{"unread_count": h.Feed.UnreadCount()})
}

func (h *Handler) removeNotification(w http.ResponseWriter, r *http.Request) {
	h.Feed.Remove(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]int{"unread_count": h.Feed.UnreadCount()})
}
