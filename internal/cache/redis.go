package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"carrental-backend/internal/logger"
)

// catalogPrefix namespaces one key per listing filter. Each key carries its
// own TTL; Invalidate drops every key under the prefix.
const catalogPrefix = "carrental:catalog:vehicles:"

// Catalog caches public vehicle listings. Prices are never cached: seasons and
// the current season must be read fresh for every quote.
type Catalog interface {
	Get(ctx context.Context, field string, dst any) (bool, error)
	Set(ctx context.Context, field string, value any) error
	Invalidate(ctx context.Context) error
}

type redisCatalog struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCatalog connects to Redis and verifies the connection.
func NewRedisCatalog(ctx context.Context, addr, password string, db int, ttl time.Duration) (Catalog, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	logger.ExternalServiceCall("redis", "ping", "addr", addr)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.ExternalServiceResult("redis", "ping", err)
		return nil, fmt.Errorf("cache.NewRedisCatalog: %w", err)
	}
	logger.ExternalServiceResult("redis", "ping", nil)
	return &redisCatalog{client: client, ttl: ttl}, nil
}

func (c *redisCatalog) key(field string) string {
	return catalogPrefix + field
}

func (c *redisCatalog) Get(ctx context.Context, field string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, c.key(field)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache.Get: %w", err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("cache.Get: %w", err)
	}
	return true, nil
}

func (c *redisCatalog) Set(ctx context.Context, field string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	if err := c.client.Set(ctx, c.key(field), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}

func (c *redisCatalog) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, catalogPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}
	return nil
}

type noopCatalog struct{}

// NewNoop returns a Catalog that never stores anything, used when Redis is disabled.
func NewNoop() Catalog {
	return noopCatalog{}
}

func (noopCatalog) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCatalog) Set(context.Context, string, any) error         { return nil }
func (noopCatalog) Invalidate(context.Context) error               { return nil }
