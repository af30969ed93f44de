package store

import (
	"errors"
	"sync"

	"delivery-storefront/storefront/internal/domain"
)

// ErrDifferentRestaurant is returned when an add would mix restaurants in one
// cart. The caller confirms the destructive replacement with ReplaceWith.
var ErrDifferentRestaurant = errors.New("cart contains items from another restaurant")

// Totals are derived after every mutation, never set by callers.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Total       int `json:"total"`
}

// Cart holds line items scoped to a single restaurant.
type Cart struct {
	mu         sync.Mutex
	items      []domain.CartItem
	restaurant *domain.Restaurant
	totals     Totals
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends a line (or accumulates quantity on an existing one). Adding
// from a different restaurant than the cart's scope fails with
// ErrDifferentRestaurant and leaves the cart unchanged.
func (c *Cart) AddItem(item domain.MenuItem, restaurant domain.Restaurant, quantity int, instructions string) error {
	if quantity <= 0 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restaurant != nil && c.restaurant.ID != restaurant.ID {
		return ErrDifferentRestaurant
	}

	for i := range c.items {
		if c.items[i].MenuItem.ID == item.ID {
			c.items[i].Quantity += quantity
			if instructions != "" {
				c.items[i].SpecialInstructions = instructions
			}
			c.recalculate()
			return nil
		}
	}

	c.items = append(c.items, domain.CartItem{
		MenuItem:            item,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	})
	if c.restaurant == nil {
		r := restaurant
		c.restaurant = &r
	}
	c.recalculate()
	return nil
}

// ReplaceWith is the confirmed destructive path: the cart becomes exactly the
// new line, scoped to the new restaurant.
func (c *Cart) ReplaceWith(item domain.MenuItem, restaurant domain.Restaurant, quantity int, instructions string) {
	if quantity <= 0 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	r := restaurant
	c.items = []domain.CartItem{{
		MenuItem:            item,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	}}
	c.restaurant = &r
	c.recalculate()
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].MenuItem.ID == itemID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.recalculate()
}

func (c *Cart) UpdateInstructions(itemID, instructions string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].MenuItem.ID == itemID {
			c.items[i].SpecialInstructions = instructions
			break
		}
	}
}

// RemoveItem drops a line; removing the last line clears the restaurant scope.
func (c *Cart) RemoveItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.MenuItem.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if len(c.items) == 0 {
		c.restaurant = nil
	}
	c.recalculate()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.restaurant = nil
	c.recalculate()
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem(nil), c.items...)
}

func (c *Cart) Restaurant() (domain.Restaurant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restaurant == nil {
		return domain.Restaurant{}, false
	}
	return *c.restaurant, true
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) ItemByID(itemID string) (domain.CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.MenuItem.ID == itemID {
			return item, true
		}
	}
	return domain.CartItem{}, false
}

// recalculate rederives the totals. Callers must hold the lock.
func (c *Cart) recalculate() {
	subtotal := 0
	for _, item := range c.items {
		subtotal += item.MenuItem.Price * item.Quantity
	}
	fee := 0
	if c.restaurant != nil {
		fee = c.restaurant.DeliveryFee
	}
	c.totals = Totals{Subtotal: subtotal, DeliveryFee: fee, Total: subtotal + fee}
}
