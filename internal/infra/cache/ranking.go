// Package cache holds the optional Redis read-through cache for the theme
// popularity ranking. Availability and reservation rules never go through
// here; they require read-after-write consistency.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"roomescape-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

type RedisRankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRankingCache(client *redis.Client, ttl time.Duration) *RedisRankingCache {
	return &RedisRankingCache{
		client: client,
		ttl:    ttl,
	}
}

// Get treats every failure as a miss; the caller falls through to the store.
func (c *RedisRankingCache) Get(ctx context.Context, key string) ([]*queries.ThemeView, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("ranking cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var themes []*queries.ThemeView
	if err := json.Unmarshal(payload, &themes); err != nil {
		slog.Warn("ranking cache payload corrupt", "key", key, "error", err)
		return nil, false
	}

	return themes, true
}

func (c *RedisRankingCache) Set(ctx context.Context, key string, themes []*queries.ThemeView) {
	payload, err := json.Marshal(themes)
	if err != nil {
		slog.Warn("ranking cache marshal failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("ranking cache write failed", "key", key, "error", err)
	}
}
