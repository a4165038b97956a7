// Package cache adds a Redis read-through layer over the catalog read
// store. Only the list reads are cached; single-row lookups go straight
// to the database.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	activeServicesKey = "catalog:services:active"
	allServicesKey    = "catalog:services:all"
	catalogTTL        = 5 * time.Minute
)

type CatalogCacheStore struct {
	inner  queries.CatalogReadStore
	client *redis.Client
}

func NewCatalogCacheStore(inner queries.CatalogReadStore, client *redis.Client) *CatalogCacheStore {
	return &CatalogCacheStore{inner: inner, client: client}
}

func (c *CatalogCacheStore) FindActive(ctx context.Context) ([]*queries.ServiceView, error) {
	return c.listThrough(ctx, activeServicesKey, c.inner.FindActive)
}

func (c *CatalogCacheStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	return c.listThrough(ctx, allServicesKey, c.inner.FindAll)
}

func (c *CatalogCacheStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	return c.inner.FindByID(ctx, id)
}

// Invalidate drops the cached lists. Called after every catalog write.
func (c *CatalogCacheStore) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeServicesKey, allServicesKey).Err()
}

// listThrough serves from Redis when possible. A cache failure degrades to
// a database read, never to a request failure.
func (c *CatalogCacheStore) listThrough(
	ctx context.Context,
	key string,
	load func(context.Context) ([]*queries.ServiceView, error),
) ([]*queries.ServiceView, error) {
	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var views []*queries.ServiceView
		if jsonErr := json.Unmarshal([]byte(cached), &views); jsonErr == nil {
			return views, nil
		}
	} else if err != redis.Nil {
		slog.Warn("catalog cache read failed", "key", key, "error", err)
	}

	views, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(views); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, catalogTTL).Err(); setErr != nil {
			slog.Warn("catalog cache write failed", "key", key, "error", setErr)
		}
	}

	return views, nil
}

// NoopCatalogCache satisfies the invalidation hook when caching is
// disabled.
type NoopCatalogCache struct{}

func NewNoopCatalogCache() *NoopCatalogCache {
	return &NoopCatalogCache{}
}

func (NoopCatalogCache) Invalidate(context.Context) error { return nil }
