package bootstrap

import (
	"context"

	"bundlestay/internal/infra/cache"
	"bundlestay/internal/pkg/config"
	"bundlestay/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewCatalogCache,
			fx.As(new(queries.CatalogCache)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewCatalogCache(client *redis.Client, cfg config.Config) *cache.CatalogCache {
	return cache.NewCatalogCache(client, cfg.Redis.CatalogTTL)
}
