package storage

import "delivery-storefront/storefront/internal/domain"

// Seed data lets the demo run without a database, mirroring the hosted demo
// catalog for Cotonou.

func SeedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:           "1",
			Name:         "Restaurant Le Bénin",
			Description:  "Spécialités béninoises authentiques dans une ambiance traditionnelle",
			Image:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=400",
			Rating:       4.5,
			DeliveryTime: "30-45 min",
			DeliveryFee:  500,
			Cuisine:      "Béninoise",
			Address:      "Cotonou, Quartier Gbegamey",
			Coordinates:  domain.LatLng{Lat: 6.4963, Lng: 2.6297},
			IsOpen:       true,
			Phone:        "+229 21 30 00 00",
			Email:        "contact@lebenin.bj",
		},
		{
			ID:           "2",
			Name:         "Chez Maman",
			Description:  "Cuisine africaine et internationale faite avec amour",
			Image:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=400",
			Rating:       4.8,
			DeliveryTime: "25-40 min",
			DeliveryFee:  750,
			Cuisine:      "Africaine",
			Address:      "Porto-Novo, Centre-ville",
			Coordinates:  domain.LatLng{Lat: 6.4963, Lng: 2.6297},
			IsOpen:       true,
			Phone:        "+229 20 00 00 00",
			Email:        "info@chezmaman.bj",
		},
		{
			ID:           "3",
			Name:         "La Pizzeria",
			Description:  "Pizza italienne authentique et plats européens",
			Image:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=400",
			Rating:       4.2,
			DeliveryTime: "35-50 min",
			DeliveryFee:  1000,
			Cuisine:      "Italienne",
			Address:      "Cotonou, Fidjrossè",
			Coordinates:  domain.LatLng{Lat: 6.4963, Lng: 2.6297},
			IsOpen:       false,
			Phone:        "+229 21 00 00 00",
			Email:        "delivery@lapizzeria.bj",
		},
		{
			ID:           "4",
			Name:         "Le Petit Bistro",
			Description:  "Cuisine française raffinée et vins sélectionnés",
			Image:        "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400",
			Rating:       4.6,
			DeliveryTime: "40-55 min",
			DeliveryFee:  1200,
			Cuisine:      "Française",
			Address:      "Cotonou, Haie Vive",
			Coordinates:  domain.LatLng{Lat: 6.4963, Lng: 2.6297},
			IsOpen:       true,
			Phone:        "+229 21 45 00 00",
			Email:        "contact@petitbistro.bj",
		},
	}
}

func SeedMenuItems(restaurantID string) []domain.MenuItem {
	menus := map[string][]domain.MenuItem{
		"1": {
			{ID: "1-1", RestaurantID: "1", Name: "Amiwo au poulet", Description: "Pâte de maïs rouge, poulet braisé, sauce tomate", Price: 2500, Category: "Plats", Available: true, PreparationTime: 25, Spicy: true, Popular: true},
			{ID: "1-2", RestaurantID: "1", Name: "Akassa poisson", Description: "Akassa accompagné de poisson frit et sauce", Price: 2000, Category: "Plats", Available: true, PreparationTime: 20},
			{ID: "1-3", RestaurantID: "1", Name: "Jus de bissap", Description: "Boisson fraîche à l'hibiscus", Price: 500, Category: "Boissons", Available: true, PreparationTime: 5, Popular: true},
		},
		"2": {
			{ID: "2-1", RestaurantID: "2", Name: "Riz sauce arachide", Description: "Riz blanc, sauce arachide maison, viande de bœuf", Price: 3000, Category: "Plats", Available: true, PreparationTime: 30, Popular: true},
			{ID: "2-2", RestaurantID: "2", Name: "Alloco poulet", Description: "Bananes plantains frites et poulet grillé", Price: 2800, Category: "Plats", Available: true, PreparationTime: 25, Spicy: true},
		},
		"3": {
			{ID: "3-1", RestaurantID: "3", Name: "Pizza Margherita", Description: "Tomate, mozzarella, basilic", Price: 4500, Category: "Pizzas", Available: true, PreparationTime: 20, Popular: true},
			{ID: "3-2", RestaurantID: "3", Name: "Pizza Regina", Description: "Tomate, mozzarella, jambon, champignons", Price: 5500, Category: "Pizzas", Available: false, PreparationTime: 20},
		},
		"4": {
			{ID: "4-1", RestaurantID: "4", Name: "Magret de canard", Description: "Magret rôti, sauce au miel, légumes de saison", Price: 8500, Category: "Plats", Available: true, PreparationTime: 35},
			{ID: "4-2", RestaurantID: "4", Name: "Crème brûlée", Description: "Classique à la vanille de Madagascar", Price: 3000, Category: "Desserts", Available: true, PreparationTime: 10, Popular: true},
		},
	}
	return menus[restaurantID]
}

func SeedCouriers() []domain.Courier {
	return []domain.Courier{
		{
			ID:    "driver_1",
			Name:  "Koffi Legba",
			Phone: "+229 95 00 00 00",
			Email: "koffi.legba@fdb.bj",
			Vehicle: domain.Vehicle{
				Type: "moto", Brand: "Honda", Model: "PCX", Color: "Rouge", PlateNumber: "AA123BB",
			},
			Rating:          4.8,
			IsOnline:        true,
			TotalDeliveries: 156,
		},
		{
			ID:    "driver_2",
			Name:  "Sena Agossou",
			Phone: "+229 96 00 00 00",
			Email: "sena.agossou@fdb.bj",
			Vehicle: domain.Vehicle{
				Type: "bicycle", Brand: "BTwin", Model: "Riverside", Color: "Bleu", PlateNumber: "",
			},
			Rating:          4.6,
			IsOnline:        false,
			TotalDeliveries: 89,
		},
	}
}

func SeedCustomer() domain.Customer {
	addr := domain.Address{
		ID:          "addr_1",
		Street:      "123 Rue de la Paix",
		City:        "Cotonou",
		Area:        "Gbegamey",
		Coordinates: domain.LatLng{Lat: 6.4953, Lng: 2.6287},
		IsDefault:   true,
	}
	return domain.Customer{
		ID:             "customer_1",
		Name:           "Jean Doe",
		Email:          "jean.doe@fdb.bj",
		Phone:          "+229 97 00 00 00",
		Addresses:      []domain.Address{addr},
		DefaultAddress: addr,
		LoyaltyPoints:  450,
		TotalOrders:    23,
	}
}
