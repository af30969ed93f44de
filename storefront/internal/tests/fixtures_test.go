package tests

import (
	"time"

	"delivery-storefront/storefront/internal/domain"
)

func fixtureRestaurant(id, name string, fee int) domain.Restaurant {
	return domain.Restaurant{
		ID:           id,
		Name:         name,
		Cuisine:      "Béninoise",
		DeliveryTime: "30-45 min",
		DeliveryFee:  fee,
		Rating:       4.5,
		IsOpen:       true,
		Coordinates:  domain.LatLng{Lat: 6.4963, Lng: 2.6297},
	}
}

func fixtureMenuItem(id string, price int) domain.MenuItem {
	return domain.MenuItem{
		ID:        id,
		Name:      "item " + id,
		Price:     price,
		Available: true,
	}
}

func fixtureOrder(id string, status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:             id,
		Customer:       domain.Customer{ID: "customer_1"},
		Restaurant:     fixtureRestaurant("1", "Restaurant Le Bénin", 500),
		Status:         status,
		TotalAmount:    3500,
		DeliveryFee:    500,
		TrackingNumber: "TN000000001",
		CreatedAt:      time.Now(),
	}
}

func fixtureDelivery(id, orderID string) domain.Delivery {
	return domain.Delivery{
		ID:              id,
		OrderID:         orderID,
		Courier:         domain.Courier{ID: "driver_1", Name: "Koffi Legba", IsOnline: true},
		Status:          domain.DeliveryAssigned,
		CurrentLocation: domain.LatLng{Lat: 6.4963, Lng: 2.6297},
	}
}
