// Package cache provides Redis-backed stores for short-lived link state and
// resolved channel identifiers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fangate-io/fangate/internal/shared/biztime"
)

// pendingLink carries the chat identity attached to an in-flight OAuth
// authorization, keyed by the opaque state value in the redirect.
type pendingLink struct {
	MemberID    string    `json:"member_id"`
	DisplayName string    `json:"display_name"`
	Platform    string    `json:"platform"`
	CreatedAt   time.Time `json:"created_at"`
}

// LinkStateStore stores pending links in Redis with a TTL. State values are
// single use: retrieval consumes them atomically via GETDEL, so a replayed
// callback fails.
type LinkStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewLinkStateStore creates a new LinkStateStore instance.
// Parameters:
//   - client: Redis client instance
//   - prefix: Key prefix for namespacing (e.g., "link:state:")
//   - ttl: Time-to-live for state keys (recommended: 10 minutes)
func NewLinkStateStore(client *redis.Client, prefix string, ttl time.Duration) *LinkStateStore {
	return &LinkStateStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Set stores the pending link under the state value with TTL.
func (s *LinkStateStore) Set(ctx context.Context, state, memberID, displayName, platform string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if memberID == "" {
		return errors.New("member id cannot be empty")
	}

	link := pendingLink{
		MemberID:    memberID,
		DisplayName: displayName,
		Platform:    platform,
		CreatedAt:   biztime.NowUTC(),
	}

	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal pending link: %w", err)
	}

	key := s.buildKey(state)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store link state in redis: %w", err)
	}

	return nil
}

// VerifyAndGet verifies the state exists and retrieves the pending link
// identity. GETDEL gets and deletes the key in one atomic operation, so the
// state can only be used once.
func (s *LinkStateStore) VerifyAndGet(ctx context.Context, state string) (memberID, displayName, platform string, err error) {
	if state == "" {
		return "", "", "", errors.New("state cannot be empty")
	}

	key := s.buildKey(state)

	data, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", "", errors.New("state not found or expired")
		}
		return "", "", "", fmt.Errorf("failed to retrieve link state from redis: %w", err)
	}

	var link pendingLink
	if err := json.Unmarshal([]byte(data), &link); err != nil {
		return "", "", "", fmt.Errorf("failed to unmarshal pending link: %w", err)
	}

	return link.MemberID, link.DisplayName, link.Platform, nil
}

// buildKey constructs the full Redis key with prefix
func (s *LinkStateStore) buildKey(state string) string {
	return s.prefix + state
}
