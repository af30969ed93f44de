package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"delivery-storefront/storefront/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoCourier = errors.New("no courier available")
)

// deliveryBuffer pads the restaurant's advertised time to get the order ETA.
const deliveryBuffer = 15 * time.Minute

// Checkout turns the cart into an order: snapshots the customer, restaurant
// and lines, assigns a courier, opens the delivery and clears the cart.
type Checkout struct {
	cart     CheckoutCart
	orders   OrderBook
	sync     DeliverySync
	qr       QRGenerator
	customer domain.Customer
	roster   []domain.Courier

	mu      sync.Mutex
	qrCodes map[string][]byte
}

func NewCheckout(cart CheckoutCart, orders OrderBook, sync DeliverySync, qr QRGenerator, customer domain.Customer, roster []domain.Courier) *Checkout {
	return &Checkout{
		cart:     cart,
		orders:   orders,
		sync:     sync,
		qr:       qr,
		customer: customer,
		roster:   roster,
		qrCodes:  make(map[string][]byte),
	}
}

// PlaceOrder runs the whole checkout. The returned order starts pending; the
// assigned delivery immediately moves it to confirmed through the
// synchronizer mapping.
func (c *Checkout) PlaceOrder(payment domain.PaymentMethod) (domain.Order, error) {
	items := c.cart.Items()
	restaurant, scoped := c.cart.Restaurant()
	if len(items) == 0 || !scoped {
		return domain.Order{}, ErrEmptyCart
	}

	courier, ok := c.pickCourier()
	if !ok {
		return domain.Order{}, ErrNoCourier
	}

	totals := c.cart.Totals()
	now := time.Now()
	eta := now.Add(time.Duration(leadingMinutes(restaurant.DeliveryTime))*time.Minute + deliveryBuffer)

	order := domain.Order{
		ID:                    uuid.NewString(),
		Customer:              c.customer,
		Restaurant:            restaurant,
		Items:                 items,
		TotalAmount:           totals.Total,
		DeliveryFee:           totals.DeliveryFee,
		Status:                domain.OrderPending,
		DeliveryAddress:       c.customer.DefaultAddress,
		PaymentMethod:         payment,
		EstimatedDeliveryTime: eta,
		CreatedAt:             now,
		TrackingNumber:        fmt.Sprintf("TN%09d", rand.Intn(1_000_000_000)),
	}
	c.orders.AddOrder(order)

	delivery := &domain.Delivery{
		ID:               uuid.NewString(),
		OrderID:          order.ID,
		Courier:          courier,
		Status:           domain.DeliveryAssigned,
		CurrentLocation:  restaurant.Coordinates,
		EstimatedArrival: eta,
		StartedAt:        &now,
	}
	c.orders.SetActiveDelivery(delivery)
	c.sync.UpdateDeliveryStatus(delivery.ID, domain.DeliveryAssigned, nil)

	c.cart.Clear()

	if c.qr != nil {
		if png, err := c.qr.Generate(order.TrackingNumber); err == nil {
			c.mu.Lock()
			c.qrCodes[order.ID] = png
			c.mu.Unlock()
		} else {
			log.Printf("Warning: failed to generate tracking QR: %v", err)
		}
	}

	log.Printf("Order %s placed at %s, courier %s assigned", order.ID, restaurant.Name, courier.Name)
	return order, nil
}

// QRCode returns the tracking QR for an order, regenerating it on a miss.
func (c *Checkout) QRCode(orderID, trackingNumber string) ([]byte, error) {
	c.mu.Lock()
	png, ok := c.qrCodes[orderID]
	c.mu.Unlock()
	if ok {
		return png, nil
	}
	if c.qr == nil {
		return nil, errors.New("qr generation disabled")
	}
	png, err := c.qr.Generate(trackingNumber)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.qrCodes[orderID] = png
	c.mu.Unlock()
	return png, nil
}

func (c *Checkout) pickCourier() (domain.Courier, bool) {
	for _, courier := range c.roster {
		if courier.IsOnline {
			return courier, true
		}
	}
	return domain.Courier{}, false
}

func leadingMinutes(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	if n == 0 {
		n = 30
	}
	return n
}
