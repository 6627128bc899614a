// Package redis provides the Redis-backed cache repository.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/ports/outbound"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = fmt.Errorf("cache miss")

// NewClient creates a configured Redis client.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
}

// CacheRepository implements the cache repository interface on Redis.
// Values are stored as JSON.
type CacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(client *redis.Client, logger *zap.Logger) outbound.CacheRepository {
	return &CacheRepository{
		client: client,
		logger: logger.Named("cache"),
	}
}

// Get retrieves a value and unmarshals it into dest
func (r *CacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		r.logger.Debug("cache get failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set stores a value with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Error("cache set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a value
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("cache delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Exists checks whether a key exists
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("cache exists check failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return n > 0, nil
}
