package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

const banCacheKeyPrefix = "ban:decision:"

// cachedBanDecision is the Redis representation of a ban decision.
type cachedBanDecision struct {
	Banned      bool       `json:"banned"`
	Reason      string     `json:"reason,omitempty"`
	IsPermanent bool       `json:"is_permanent,omitempty"`
	BannedUntil *time.Time `json:"banned_until,omitempty"`
}

// redisBanCache implements adapter.BanCache on top of Redis.
type redisBanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBanCache creates a ban decision cache with the given TTL.
func NewRedisBanCache(client *redis.Client, ttl time.Duration) adapter.BanCache {
	return &redisBanCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached decision for the fingerprint, or nil on miss.
func (c *redisBanCache) Get(ctx context.Context, fingerprint string) (*entity.BanDecision, error) {
	data, err := c.client.Get(ctx, banCacheKeyPrefix+fingerprint).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ban cache: %w", err)
	}

	var cached cachedBanDecision
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached ban decision: %w", err)
	}

	return &entity.BanDecision{
		Banned:      cached.Banned,
		Reason:      cached.Reason,
		IsPermanent: cached.IsPermanent,
		BannedUntil: cached.BannedUntil,
	}, nil
}

// Set stores the decision for the fingerprint.
func (c *redisBanCache) Set(ctx context.Context, fingerprint string, decision *entity.BanDecision) error {
	data, err := json.Marshal(cachedBanDecision{
		Banned:      decision.Banned,
		Reason:      decision.Reason,
		IsPermanent: decision.IsPermanent,
		BannedUntil: decision.BannedUntil,
	})
	if err != nil {
		return fmt.Errorf("failed to encode ban decision: %w", err)
	}

	if err := c.client.Set(ctx, banCacheKeyPrefix+fingerprint, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write ban cache: %w", err)
	}
	return nil
}
