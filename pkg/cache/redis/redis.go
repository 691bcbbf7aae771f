// Package redis implements the cache interface on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accounts/pkg/cache"

	"github.com/redis/go-redis/v9"
)

// Options defines the configuration parameters for the Redis connection.
type Options struct {
	// Addr is the Redis server address in host:port form.
	Addr string
	// Password is the server password, empty when auth is disabled.
	Password string
	// DB is the logical database index to use.
	DB int
}

// Redis implements cache.Cache on a Redis server.
type Redis struct {
	client *redis.Client
}

var _ cache.Cache = (*Redis)(nil)

// New connects to the Redis server and verifies the connection with a ping.
func New(ctx context.Context, options Options) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not get key from redis: %w", err)
	}

	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("could not set key in redis: %w", err)
	}

	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) (bool, error) {
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("could not delete key from redis: %w", err)
	}

	return deleted > 0, nil
}

// Close closes the underlying Redis client.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
