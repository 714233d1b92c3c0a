// Package cacheinfra provides the concrete cache.Store backends: a Redis
// adapter for deployments where many request workers share one cache, and an
// in-process store for single-binary setups and tests.
package cacheinfra

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
)

// RedisStore implements cache.Store on a shared Redis instance. TTLs are
// enforced server-side per key.
type RedisStore struct {
	client *redis.Client
}

var _ cache.Store = (*RedisStore)(nil)

// NewRedisClient builds a Redis client from the store configuration.
func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore wraps an existing Redis client as a cache.Store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get implements cache.Store.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cache.ErrMiss
		}
		return nil, err
	}
	return payload, nil
}

// Set implements cache.Store.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Delete implements cache.Store.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// DeleteByPrefix implements cache.Store. It walks the keyspace with SCAN so a
// large namespace does not block the server the way KEYS would.
func (s *RedisStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Ping verifies the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
