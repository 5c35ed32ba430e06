package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carrental/bookingservice/internal/domain"
)

// Key prefixes. The add-on key includes the vehicle id because eligibility
// is scoped per vehicle; nil scoping uses the "base" key.
const (
	vehiclesKey    = "catalog:vehicles"
	addonKeyPrefix = "catalog:addons:"
)

// Cache is a redis-backed TTL decorator over a Provider. Catalog data is
// read-only, so entries need no invalidation — they just age out after the
// configured freshness window.
//
// Redis being down must never make the catalog less available than the
// inner provider: every redis error falls through to the inner provider,
// and cache writes are best-effort.
type Cache struct {
	inner  Provider
	client *redis.Client
	ttl    time.Duration
}

// NewCache wraps inner with a redis cache holding entries for ttl.
func NewCache(inner Provider, client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{inner: inner, client: client, ttl: ttl}
}

// ListVehicles returns the cached vehicle list, falling back to the inner
// provider on a miss.
func (c *Cache) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if data, err := c.client.Get(ctx, vehiclesKey).Bytes(); err == nil {
		var cached []domain.Vehicle
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// Unreadable entry: treat as a miss and let the refill overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		slog.Debug("catalog cache read failed", "key", vehiclesKey, "error", err)
	}

	vehicles, err := c.inner.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, vehiclesKey, vehicles)
	return vehicles, nil
}

// ListAddons returns the cached add-on set for the given vehicle scope,
// falling back to the inner provider on a miss.
func (c *Cache) ListAddons(ctx context.Context, vehicleID *int64) ([]domain.Addon, error) {
	key := addonKey(vehicleID)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var cached []domain.Addon
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.Debug("catalog cache read failed", "key", key, "error", err)
	}

	addons, err := c.inner.ListAddons(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, addons)
	return addons, nil
}

// store writes a cache entry best-effort; failures are logged and ignored.
func (c *Cache) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Debug("catalog cache write failed", "key", key, "error", err)
	}
}

// addonKey builds the cache key for a vehicle-scoped add-on listing.
func addonKey(vehicleID *int64) string {
	if vehicleID == nil {
		return addonKeyPrefix + "base"
	}
	return fmt.Sprintf("%s%d", addonKeyPrefix, *vehicleID)
}
