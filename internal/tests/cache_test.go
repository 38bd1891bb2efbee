package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"addis-kitchen/internal/domain"
	"addis-kitchen/internal/storage"
)

func newCache(t *testing.T, ttl time.Duration) (*storage.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, ttl), mr
}

func TestMenuSnapshotRoundTrip(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	items := []domain.MenuItem{
		{ID: "doro", Name: "Doro Wot", Category: "mains", Price: 18.99, Available: true},
		{ID: "coffee", Name: "Ethiopian Coffee", Category: "drinks", Price: 4.99, Available: true},
	}

	assert.NoError(t, cache.SetMenu(ctx, items))

	cached, ok := cache.GetMenu(ctx)
	assert.True(t, ok)
	assert.Equal(t, items, cached)
}

func TestMenuSnapshotMiss(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	cached, ok := cache.GetMenu(context.Background())
	assert.False(t, ok)
	assert.Nil(t, cached)
}

func TestMenuSnapshotExpires(t *testing.T) {
	cache, mr := newCache(t, time.Second)
	ctx := context.Background()

	assert.NoError(t, cache.SetMenu(ctx, []domain.MenuItem{{ID: "doro", Name: "Doro Wot"}}))

	mr.FastForward(2 * time.Second)

	_, ok := cache.GetMenu(ctx)
	assert.False(t, ok)
}

func TestOrdersSnapshotRoundTrip(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	orders := []domain.Order{
		{ID: "ord-1", CustomerName: "Alice", Status: domain.OrderPending, TotalAmount: 18.99},
		{ID: "ord-2", CustomerName: "Bob", Status: domain.OrderReady, TotalAmount: 4.99},
	}

	assert.NoError(t, cache.SetOrders(ctx, orders))

	cached, ok := cache.GetOrders(ctx)
	assert.True(t, ok)
	assert.Equal(t, orders, cached)
}

func TestOrdersSnapshotInvalidate(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.SetOrders(ctx, []domain.Order{{ID: "ord-1"}}))
	assert.NoError(t, cache.InvalidateOrders(ctx))

	_, ok := cache.GetOrders(ctx)
	assert.False(t, ok)
}

func TestBookingsSnapshotRoundTrip(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	bookings := []domain.Booking{
		{ID: "bkg-1", CustomerName: "Alice", BookingDate: "2026-09-15", BookingTime: "19:00", PartySize: 4, Status: domain.BookingPending},
	}

	assert.NoError(t, cache.SetBookings(ctx, bookings))

	cached, ok := cache.GetBookings(ctx)
	assert.True(t, ok)
	assert.Equal(t, bookings, cached)
}

func TestBookingsSnapshotInvalidate(t *testing.T) {
	cache, mr := newCache(t, time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.SetOrders(ctx, []domain.Order{{ID: "ord-1"}}))
	assert.NoError(t, cache.SetBookings(ctx, []domain.Booking{{ID: "bkg-1"}}))

	assert.NoError(t, cache.InvalidateBookings(ctx))

	_, ok := cache.GetBookings(ctx)
	assert.False(t, ok)

	// Only the bookings key was dropped.
	assert.True(t, mr.Exists("orders:snapshot"))
}
