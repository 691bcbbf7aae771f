// Package cache defines a small key-value cache interface used for read-through
// caching of frequently accessed entities. Values are plain strings; callers
// are responsible for serialization.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"time"
)

// Cache describes a key-value store with per-key expiration.
type Cache interface {
	// Get returns the value stored under key. The boolean result is false on a
	// cache miss.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key with the given TTL. A zero TTL stores the value
	// without expiration.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes the key. The boolean result is false when the key did not
	// exist.
	Delete(ctx context.Context, key string) (bool, error)
	// Close releases any resources held by the cache implementation.
	Close() error
}
