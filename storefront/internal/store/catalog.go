package store

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"delivery-storefront/storefront/internal/domain"
)

// Catalog holds the restaurant collection and a filtered view derived from
// the current search parameters. Every parameter change recomputes the view
// synchronously.
type Catalog struct {
	mu          sync.Mutex
	restaurants []domain.Restaurant
	filtered    []domain.Restaurant
	params      domain.SearchParams
}

func NewCatalog() *Catalog {
	return &Catalog{
		params: domain.SearchParams{
			// Default position: Cotonou
			Location: domain.LatLng{Lat: 6.4963, Lng: 2.6297},
		},
	}
}

// SetRestaurants replaces the collection wholesale.
func (c *Catalog) SetRestaurants(restaurants []domain.Restaurant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restaurants = append([]domain.Restaurant(nil), restaurants...)
	c.recompute()
}

func (c *Catalog) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params.Query = query
	c.recompute()
}

func (c *Catalog) SetFilters(filters domain.FilterOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params.Filters = filters
	c.recompute()
}

func (c *Catalog) SetLocation(lat, lng float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params.Location = domain.LatLng{Lat: lat, Lng: lng}
	c.recompute()
}

func (c *Catalog) Restaurants() []domain.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Restaurant(nil), c.restaurants...)
}

func (c *Catalog) Filtered() []domain.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Restaurant(nil), c.filtered...)
}

func (c *Catalog) Params() domain.SearchParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

func (c *Catalog) ByID(id string) (domain.Restaurant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Restaurant{}, false
}

func (c *Catalog) ByCuisine(cuisine string) []domain.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.Restaurant
	for _, r := range c.restaurants {
		if strings.Contains(strings.ToLower(r.Cuisine), strings.ToLower(cuisine)) {
			out = append(out, r)
		}
	}
	return out
}

// recompute applies the filter pipeline in fixed order: text search, cuisine,
// fee range, minimum rating, then sort. Callers must hold the lock.
func (c *Catalog) recompute() {
	filtered := append([]domain.Restaurant(nil), c.restaurants...)

	if c.params.Query != "" {
		query := strings.ToLower(c.params.Query)
		filtered = keep(filtered, func(r domain.Restaurant) bool {
			return strings.Contains(strings.ToLower(r.Name), query) ||
				strings.Contains(strings.ToLower(r.Description), query) ||
				strings.Contains(strings.ToLower(r.Cuisine), query)
		})
	}

	f := c.params.Filters

	if f.Cuisine != "" {
		cuisine := strings.ToLower(f.Cuisine)
		filtered = keep(filtered, func(r domain.Restaurant) bool {
			return strings.Contains(strings.ToLower(r.Cuisine), cuisine)
		})
	}

	if f.PriceRange != nil {
		filtered = keep(filtered, func(r domain.Restaurant) bool {
			return r.DeliveryFee >= f.PriceRange.Min && r.DeliveryFee <= f.PriceRange.Max
		})
	}

	if f.Rating > 0 {
		filtered = keep(filtered, func(r domain.Restaurant) bool {
			return r.Rating >= f.Rating
		})
	}

	switch f.SortBy {
	case domain.SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case domain.SortByDeliveryTime:
		sort.SliceStable(filtered, func(i, j int) bool {
			return leadingMinutes(filtered[i].DeliveryTime) < leadingMinutes(filtered[j].DeliveryTime)
		})
	case domain.SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DeliveryFee < filtered[j].DeliveryFee
		})
	case domain.SortByDistance:
		from := c.params.Location
		sort.SliceStable(filtered, func(i, j int) bool {
			return haversine(from, filtered[i].Coordinates) < haversine(from, filtered[j].Coordinates)
		})
	}

	c.filtered = filtered
}

func keep(restaurants []domain.Restaurant, pred func(domain.Restaurant) bool) []domain.Restaurant {
	out := restaurants[:0]
	for _, r := range restaurants {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// leadingMinutes parses the leading integer of a free-text duration such as
// "30-45 min".
func leadingMinutes(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n
}

// haversine returns the great-circle distance in km on a 6371 km earth radius.
func haversine(a, b domain.LatLng) float64 {
	const earthRadiusKm = 6371
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
