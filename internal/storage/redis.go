package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"addis-kitchen/internal/domain"
)

const (
	menuSnapshotKey     = "menu:snapshot"
	ordersSnapshotKey   = "orders:snapshot"
	bookingsSnapshotKey = "bookings:snapshot"
)

// RedisCache holds short-lived JSON snapshots: the menu for storefront
// loads, and the order/booking collections for admin refreshes. A miss or
// any redis error just falls through to the repository.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) get(ctx context.Context, key string, target interface{}) bool {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, target) == nil
}

func (c *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	var items []domain.MenuItem
	if !c.get(ctx, menuSnapshotKey, &items) {
		return nil, false
	}
	return items, true
}

func (c *RedisCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	return c.set(ctx, menuSnapshotKey, items)
}

func (c *RedisCache) GetOrders(ctx context.Context) ([]domain.Order, bool) {
	var orders []domain.Order
	if !c.get(ctx, ordersSnapshotKey, &orders) {
		return nil, false
	}
	return orders, true
}

func (c *RedisCache) SetOrders(ctx context.Context, orders []domain.Order) error {
	return c.set(ctx, ordersSnapshotKey, orders)
}

func (c *RedisCache) InvalidateOrders(ctx context.Context) error {
	return c.Client.Del(ctx, ordersSnapshotKey).Err()
}

func (c *RedisCache) GetBookings(ctx context.Context) ([]domain.Booking, bool) {
	var bookings []domain.Booking
	if !c.get(ctx, bookingsSnapshotKey, &bookings) {
		return nil, false
	}
	return bookings, true
}

func (c *RedisCache) SetBookings(ctx context.Context, bookings []domain.Booking) error {
	return c.set(ctx, bookingsSnapshotKey, bookings)
}

func (c *RedisCache) InvalidateBookings(ctx context.Context) error {
	return c.Client.Del(ctx, bookingsSnapshotKey).Err()
}
