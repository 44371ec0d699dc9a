package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChannelCache caches platform channel IDs resolved from login names so
// repeated verifications do not re-resolve the same channel. The cache is
// optional: a nil receiver or nil client behaves as a permanent miss.
type ChannelCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChannelCache creates a new ChannelCache instance.
func NewChannelCache(client *redis.Client, ttl time.Duration) *ChannelCache {
	return &ChannelCache{client: client, ttl: ttl}
}

// Get returns the cached channel ID for a platform login, or "" on a miss.
func (c *ChannelCache) Get(ctx context.Context, platform, login string) (string, error) {
	if c == nil || c.client == nil {
		return "", nil
	}

	id, err := c.client.Get(ctx, c.buildKey(platform, login)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read channel cache: %w", err)
	}
	return id, nil
}

// Set stores the resolved channel ID with TTL.
func (c *ChannelCache) Set(ctx context.Context, platform, login, channelID string) error {
	if c == nil || c.client == nil {
		return nil
	}

	err := c.client.Set(ctx, c.buildKey(platform, login), channelID, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to write channel cache: %w", err)
	}
	return nil
}

func (c *ChannelCache) buildKey(platform, login string) string {
	return fmt.Sprintf("channel:%s:%s", platform, login)
}
