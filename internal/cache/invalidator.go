// Package cache signals layout readers that a persisted write made their
// cached view stale. Every successful map/zone/ticket write invalidates the
// owning event's layout path.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const invalidateChannel = "layout.invalidate"

// Invalidator notifies readers that the layout at a path has changed.
type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// LayoutPath returns the cache path for one event's layout.
func LayoutPath(eventID string) string {
	return fmt.Sprintf("layout:event:%s", eventID)
}

// RedisInvalidator drops the cached layout key and publishes the path on the
// invalidation channel so live editors can refetch.
type RedisInvalidator struct {
	client *redis.Client
}

// NewRedisInvalidator creates a RedisInvalidator.
func NewRedisInvalidator(client *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{client: client}
}

// Invalidate deletes the key and broadcasts the path.
func (i *RedisInvalidator) Invalidate(ctx context.Context, path string) error {
	if err := i.client.Del(ctx, path).Err(); err != nil {
		return err
	}
	return i.client.Publish(ctx, invalidateChannel, path).Err()
}

// NoopInvalidator is used in tests and when no cache is configured.
type NoopInvalidator struct{}

// Invalidate does nothing.
func (NoopInvalidator) Invalidate(ctx context.Context, path string) error {
	return nil
}
