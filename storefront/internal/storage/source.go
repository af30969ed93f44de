package storage

import "delivery-storefront/storefront/internal/domain"

// Source is where the browsable catalog comes from: postgres when configured,
// the embedded seed otherwise.
type Source interface {
	ListRestaurants() ([]domain.Restaurant, error)
	ListMenuItems(restaurantID string) ([]domain.MenuItem, error)
	ListCouriers() ([]domain.Courier, error)
}

type SeedSource struct{}

func (SeedSource) ListRestaurants() ([]domain.Restaurant, error) {
	return SeedRestaurants(), nil
}

func (SeedSource) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	return SeedMenuItems(restaurantID), nil
}

func (SeedSource) ListCouriers() ([]domain.Courier, error) {
	return SeedCouriers(), nil
}

var (
	_ Source = (*CatalogRepo)(nil)
	_ Source = SeedSource{}
)
