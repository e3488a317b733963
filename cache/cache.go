// Package cache memoizes expensive lookups in Redis. A cache that cannot be
// reached never fails the caller; the wrapped function just runs.
package cache

import (
	"context"
	"time"

	"cricketscrapper/logging"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
)

// Store wraps a Redis client.
type Store struct {
	client *redis.Client
	logger *logging.Logger
}

// New connects lazily to addr; go-redis dials on first use.
func New(addr string, logger *logging.Logger) *Store {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr}), logger)
}

func NewWithClient(client *redis.Client, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{client: client, logger: logger}
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Memoize returns the cached value under key, or calls fn and stores its
// result for ttl. Errors from fn are returned and never cached.
func Memoize[T any](ctx context.Context, s *Store, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var result T

	cached, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := sonic.Unmarshal(cached, &result); jsonErr == nil {
			s.logger.Debug("cache hit", "key", key)
			return result, nil
		}
		s.logger.Warn("cache entry unreadable", "key", key)
	case err != redis.Nil:
		s.logger.Warn("cache read failed", "key", key, "error", err)
	}

	result, err = fn()
	if err != nil {
		return result, err
	}

	data, err := sonic.Marshal(result)
	if err != nil {
		s.logger.Warn("cache encode failed", "key", key, "error", err)
		return result, nil
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
	return result, nil
}
