package bootstrap

import (
	"context"
	"log/slog"

	"parking-core/internal/infra/cache"
	"parking-core/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

// NewCache falls back to a no-op cache when REDIS_URL is empty.
func NewCache(lc fx.Lifecycle, cfg config.Config) (cache.Cache, error) {
	if cfg.Cache.RedisURL == "" {
		slog.Info("REDIS_URL not set, cache disabled")
		return cache.NewNopCache(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}
	c := cache.NewRedisCache(client, cfg.Cache.OperationTimeout)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c, nil
}
