package domain

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderReadyForPickup OrderStatus = "ready_for_pickup"
	OrderPickedUp       OrderStatus = "picked_up"
	OrderDelivering     OrderStatus = "delivering"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// Terminal reports whether an order has left the active set.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type DeliveryStatus string

const (
	DeliveryAssigned            DeliveryStatus = "assigned"
	DeliveryHeadingToRestaurant DeliveryStatus = "heading_to_restaurant"
	DeliveryAtRestaurant        DeliveryStatus = "at_restaurant"
	DeliveryPickingUp           DeliveryStatus = "picking_up"
	DeliveryDelivering          DeliveryStatus = "delivering"
	DeliveryArrived             DeliveryStatus = "arrived"
	DeliveryCompleted           DeliveryStatus = "completed"
	DeliveryCancelled           DeliveryStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCreditCard  PaymentMethod = "credit_card"
	PaymentCash        PaymentMethod = "cash"
	PaymentWave        PaymentMethod = "wave"
	PaymentMoovMoney   PaymentMethod = "moov_money"
)

type NotificationType string

const (
	NotificationOrderStatus    NotificationType = "order_status"
	NotificationDeliveryUpdate NotificationType = "delivery_update"
	NotificationPromotion      NotificationType = "promotion"
	NotificationSystem         NotificationType = "system"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Restaurant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"delivery_time"`
	DeliveryFee  int     `json:"delivery_fee"`
	Cuisine      string  `json:"cuisine"`
	Address      string  `json:"address"`
	Coordinates  LatLng  `json:"coordinates"`
	IsOpen       bool    `json:"is_open"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
}

type MenuItem struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int    `json:"price"`
	Image           string `json:"image"`
	Category        string `json:"category"`
	Available       bool   `json:"available"`
	PreparationTime int    `json:"preparation_time"`
	Spicy           bool   `json:"spicy"`
	Popular         bool   `json:"popular"`
}

type CartItem struct {
	MenuItem            MenuItem `json:"menu_item"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

type Address struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Area         string `json:"area"`
	Coordinates  LatLng `json:"coordinates"`
	IsDefault    bool   `json:"is_default"`
	Instructions string `json:"instructions,omitempty"`
}

type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Addresses      []Address `json:"addresses"`
	DefaultAddress Address   `json:"default_address"`
	LoyaltyPoints  int       `json:"loyalty_points"`
	TotalOrders    int       `json:"total_orders"`
}

type Vehicle struct {
	Type        string `json:"type"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	PlateNumber string `json:"plate_number"`
}

type Courier struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Vehicle         Vehicle `json:"vehicle"`
	Rating          float64 `json:"rating"`
	IsOnline        bool    `json:"is_online"`
	TotalDeliveries int     `json:"total_deliveries"`
}

// Order embeds snapshots of the customer, restaurant and cart lines taken at
// checkout. Only Status and ActualDeliveryTime change after creation.
type Order struct {
	ID                    string        `json:"id"`
	Customer              Customer      `json:"customer"`
	Restaurant            Restaurant    `json:"restaurant"`
	Items                 []CartItem    `json:"items"`
	TotalAmount           int           `json:"total_amount"`
	DeliveryFee           int           `json:"delivery_fee"`
	Status                OrderStatus   `json:"status"`
	DeliveryAddress       Address       `json:"delivery_address"`
	PaymentMethod         PaymentMethod `json:"payment_method"`
	EstimatedDeliveryTime time.Time     `json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time    `json:"actual_delivery_time,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	TrackingNumber        string        `json:"tracking_number"`
}

// Delivery references its order by id only. One delivery is tracked at a time.
type Delivery struct {
	ID               string         `json:"id"`
	OrderID          string         `json:"order_id"`
	Courier          Courier        `json:"courier"`
	Status           DeliveryStatus `json:"status"`
	CurrentLocation  LatLng         `json:"current_location"`
	EstimatedArrival time.Time      `json:"estimated_arrival"`
	StartedAt        *time.Time     `json:"started_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}

type SortBy string

const (
	SortByRating       SortBy = "rating"
	SortByDeliveryTime SortBy = "delivery_time"
	SortByPrice        SortBy = "price"
	SortByDistance     SortBy = "distance"
)

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type FilterOptions struct {
	Cuisine    string      `json:"cuisine,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Rating     float64     `json:"rating,omitempty"`
	SortBy     SortBy      `json:"sort_by,omitempty"`
}

type SearchParams struct {
	Query    string        `json:"query"`
	Filters  FilterOptions `json:"filters"`
	Location LatLng        `json:"location"`
}
