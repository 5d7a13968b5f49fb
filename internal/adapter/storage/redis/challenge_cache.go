package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taxhub/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ChallengeCache implements ports.ChallengeCache using Redis. Solver UIs
// poll challenge state aggressively; the cache keeps those reads off
// PostgreSQL. Entries are invalidated the moment a solution lands.
type ChallengeCache struct {
	client *goredis.Client
	prefix string
}

// NewChallengeCache creates a new Redis-backed challenge cache.
func NewChallengeCache(client *goredis.Client) *ChallengeCache {
	return &ChallengeCache{
		client: client,
		prefix: "challenge:",
	}
}

// Get retrieves a cached challenge. Returns nil, nil on a miss.
func (c *ChallengeCache) Get(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error) {
	val, err := c.client.Get(ctx, c.prefix+id.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis challenge get: %w", err)
	}

	var ch domain.CaptchaChallenge
	if err := json.Unmarshal(val, &ch); err != nil {
		return nil, fmt.Errorf("decode cached challenge: %w", err)
	}
	return &ch, nil
}

// Set stores a challenge with TTL.
func (c *ChallengeCache) Set(ctx context.Context, challenge *domain.CaptchaChallenge, ttl time.Duration) error {
	raw, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+challenge.ID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis challenge set: %w", err)
	}
	return nil
}

// Invalidate drops a cached challenge.
func (c *ChallengeCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, c.prefix+id.String()).Err(); err != nil {
		return fmt.Errorf("redis challenge del: %w", err)
	}
	return nil
}
