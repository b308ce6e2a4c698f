package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cptui.GO/core/cache"
	"cptui.GO/hooks"
)

const keyPrefix = "cptui:registrations:"

// Cache stores the built registrations of a kind.
type Cache interface {
	Get(ctx context.Context, kind hooks.Kind) ([]Registration, bool, error)
	Set(ctx context.Context, kind hooks.Kind, regs []Registration) error
	Invalidate(ctx context.Context, kind hooks.Kind) error
}

// NewCache returns a Redis-backed cache when client is non-nil, otherwise
// an in-process one.
func NewCache(client *redis.Client, ttl time.Duration) Cache {
	if client != nil {
		return &RedisCache{client: client, ttl: ttl}
	}
	return &MemoryCache{c: cache.NewCache(), ttl: ttl}
}

func key(kind hooks.Kind) string {
	return keyPrefix + kind.String()
}

// RedisCache keeps registrations as JSON strings.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *RedisCache) Get(ctx context.Context, kind hooks.Kind) ([]Registration, bool, error) {
	raw, err := c.client.Get(ctx, key(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("registration cache: get %s: %w", kind, err)
	}
	var regs []Registration
	if err := json.Unmarshal(raw, &regs); err != nil {
		return nil, false, fmt.Errorf("registration cache: decode %s: %w", kind, err)
	}
	return regs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, kind hooks.Kind, regs []Registration) error {
	raw, err := json.Marshal(regs)
	if err != nil {
		return fmt.Errorf("registration cache: encode %s: %w", kind, err)
	}
	if err := c.client.Set(ctx, key(kind), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("registration cache: set %s: %w", kind, err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, kind hooks.Kind) error {
	if err := c.client.Del(ctx, key(kind)).Err(); err != nil {
		return fmt.Errorf("registration cache: invalidate %s: %w", kind, err)
	}
	return nil
}

// MemoryCache is the fallback when Redis is not configured.
type MemoryCache struct {
	c   *cache.Cache
	ttl time.Duration
}

func (c *MemoryCache) Get(ctx context.Context, kind hooks.Kind) ([]Registration, bool, error) {
	v, ok := c.c.Get(key(kind))
	if !ok {
		return nil, false, nil
	}
	regs, _ := v.([]Registration)
	return regs, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, kind hooks.Kind, regs []Registration) error {
	c.c.Set(key(kind), regs, c.ttl, []string{kind.String()})
	return nil
}

func (c *MemoryCache) Invalidate(ctx context.Context, kind hooks.Kind) error {
	c.c.DeleteByTag(kind.String())
	return nil
}
