package bootstrap

import (
	"context"
	"log/slog"

	"wanderlust-booking/internal/infra/session"
	"wanderlust-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client for the memory session backend.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Session.Backend != config.SessionBackendRedis {
		return nil
	}

	client := session.NewRedisClient(cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			logger.Info("Redis connected", "addr", cfg.Session.RedisAddr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
