// Package storage persists the client-local key/value state (session identity,
// operating mode, theme) between runs.
package storage

import (
	"context"
	"fmt"

	"studywise-client/internal/config"

	"github.com/redis/go-redis/v9"
)

// Storage is read and written per key. Implementations must be safe for
// concurrent use.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// New picks the backend named by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case DriverFile, "":
		return NewFileStorage(cfg.FilePath)
	case DriverMemory:
		return NewMemoryStorage(), nil
	case DriverRedis:
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			opt = &redis.Options{Addr: cfg.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis storage: %w", err)
		}
		return NewRedisStorage(rdb, cfg.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
