package bootstrap

import (
	"context"

	"roomescape-api/internal/infra/cache"
	"roomescape-api/internal/pkg/config"
	"roomescape-api/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRankingCache,
	),
)

// NewRankingCache wires the Redis-backed cache when REDIS_ADDR is set and a
// no-op cache otherwise. Ranking is the only cached read path.
func NewRankingCache(lc fx.Lifecycle, cfg config.Config) usecase.RankingCache {
	if cfg.Redis.Addr == "" {
		return usecase.NewNopRankingCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisRankingCache(client, cfg.Ranking.CacheTTL)
}
