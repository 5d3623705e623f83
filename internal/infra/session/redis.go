package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wanderlust-booking/internal/infra"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// NewRedisStore stores values without expiry when ttl is zero.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (r *RedisStore) Write(ctx context.Context, sessionID, key string, value []byte) error {
	if err := r.client.Set(ctx, composeKey(r.prefix, sessionID, key), value, r.ttl).Err(); err != nil {
		return infra.WrapStoreErr(r.logger, infra.KindBackendFailure, "failed to write session key "+key, err)
	}
	return nil
}

func (r *RedisStore) Read(ctx context.Context, sessionID, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, composeKey(r.prefix, sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAbsent
	}
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, infra.KindBackendFailure, "failed to read session key "+key, err)
	}
	return v, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	if err := r.client.Del(ctx, composeKey(r.prefix, sessionID, key)).Err(); err != nil {
		return infra.WrapStoreErr(r.logger, infra.KindBackendFailure, "failed to delete session key "+key, err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
