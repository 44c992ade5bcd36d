package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/symptom-guidance-server/internal/domain"
)

// RedisStore implements the key-value store on Redis, for deployments where
// multiple server instances share aggregator state. All commands run through
// a circuit breaker; while the breaker is open, reads degrade to cache misses
// and writes fail fast.
type RedisStore struct {
	redis   *redis.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logrus.Logger
}

// NewRedisStore creates a Redis-backed store from the store configuration.
func NewRedisStore(config domain.StoreConfig, logger *logrus.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.PoolSize = config.PoolSize
	opts.PoolTimeout = config.PoolTimeout
	opts.MaxRetries = config.MaxRetries

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RedisStore",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &RedisStore{
		redis:   client,
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Get decodes the value under key into dest. Missing keys, undecodable
// values, and an open circuit breaker all report false without error.
func (r *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.breaker.Execute(func() (interface{}, error) {
		return r.redis.Get(ctx, key).Result()
	})
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		r.logger.WithField("key", key).Warn("Redis read skipped, circuit breaker open")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	raw, ok := val.(string)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Drop the corrupted entry so the next write starts clean.
		r.redis.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// Set stores the JSON encoding of value under key with no expiry.
func (r *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	_, err = r.breaker.Execute(func() (interface{}, error) {
		return nil, r.redis.Set(ctx, key, data, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.redis.Del(ctx, key).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	return r.redis.Close()
}
