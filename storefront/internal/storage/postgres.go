package storage

import (
	"database/sql"

	"delivery-storefront/storefront/internal/domain"
)

// CatalogRepo reads the browsable catalog out of postgres. State never goes
// back the other way; the stores stay in-memory.
type CatalogRepo struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{DB: db}
}

func (r *CatalogRepo) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
        SELECT id, name, COALESCE(description, ''), COALESCE(image_url, ''), rating,
               COALESCE(delivery_time, ''), delivery_fee, COALESCE(cuisine, ''),
               COALESCE(address, ''), lat, lng, is_open, COALESCE(phone, ''), COALESCE(email, '')
        FROM restaurants
        ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Image, &rest.Rating,
			&rest.DeliveryTime, &rest.DeliveryFee, &rest.Cuisine,
			&rest.Address, &rest.Coordinates.Lat, &rest.Coordinates.Lng, &rest.IsOpen, &rest.Phone, &rest.Email); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, rows.Err()
}

func (r *CatalogRepo) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
        SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''),
               COALESCE(category, ''), available, preparation_time, spicy, popular
        FROM menu_items
        WHERE restaurant_id = $1
        ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
			&item.Image, &item.Category, &item.Available, &item.PreparationTime, &item.Spicy, &item.Popular); err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *CatalogRepo) ListCouriers() ([]domain.Courier, error) {
	rows, err := r.DB.Query(`
        SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''),
               vehicle_type, COALESCE(vehicle_brand, ''), COALESCE(vehicle_model, ''),
               COALESCE(vehicle_color, ''), COALESCE(plate_number, ''),
               rating, is_online, total_deliveries
        FROM couriers
        ORDER BY rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var couriers []domain.Courier
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email,
			&c.Vehicle.Type, &c.Vehicle.Brand, &c.Vehicle.Model,
			&c.Vehicle.Color, &c.Vehicle.PlateNumber,
			&c.Rating, &c.IsOnline, &c.TotalDeliveries); err != nil {
			continue
		}
		couriers = append(couriers, c)
	}

	return couriers, rows.Err()
}
