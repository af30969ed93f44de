package storage

import (
	"context"
	"time"

	"delivery-storefront/storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PromoMarkers dedups promotion events: a code that already has a marker key
// is not surfaced to the feed again.
type PromoMarkers struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPromoMarkers(client *redis.Client, ttl time.Duration) *PromoMarkers {
	return &PromoMarkers{Client: client, TTL: ttl}
}

func (m *PromoMarkers) PromoKey(code string) string {
	return "promo:" + code
}

func (m *PromoMarkers) Exists(ctx context.Context, key string) (bool, error) {
	res, err := m.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (m *PromoMarkers) SetMarker(ctx context.Context, key string) error {
	return m.Client.Set(ctx, key, "1", m.TTL).Err()
}

// LocationMirror keeps the latest courier coordinate per delivery in a redis
// hash for cheap external lookup.
type LocationMirror struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewLocationMirror(client *redis.Client, ttl time.Duration) *LocationMirror {
	return &LocationMirror{Client: client, TTL: ttl}
}

func (m *LocationMirror) MirrorLocation(ctx context.Context, deliveryID string, location domain.LatLng) error {
	key := "delivery:" + deliveryID
	if err := m.Client.HSet(ctx, key, map[string]interface{}{
		"lat":          location.Lat,
		"lng":          location.Lng,
		"last_updated": time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	return m.Client.Expire(ctx, key, m.TTL).Err()
}
