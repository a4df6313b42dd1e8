package standingscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores ranked standings as JSON blobs with a short TTL. The TTL
// is a backstop; the usual invalidation path is the verdict-ingestion
// handler dropping the key when a new result lands.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache on client. ttl <= 0 falls back to 30s.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisCache{client: client, ttl: ttl}
}

func standingsKey(contestID sharedtypes.ContestID) string {
	return fmt.Sprintf("standings:%d", contestID)
}

func (c *RedisCache) Get(ctx context.Context, contestID sharedtypes.ContestID) ([]standingstypes.StandingsEntry, bool, error) {
	raw, err := c.client.Get(ctx, standingsKey(contestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read standings cache: %w", err)
	}

	var entries []standingstypes.StandingsEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A blob we cannot decode is as good as a miss.
		return nil, false, nil
	}
	return entries, true, nil
}

func (c *RedisCache) Set(ctx context.Context, contestID sharedtypes.ContestID, entries []standingstypes.StandingsEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal standings: %w", err)
	}
	if err := c.client.Set(ctx, standingsKey(contestID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write standings cache: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, contestID sharedtypes.ContestID) error {
	if err := c.client.Del(ctx, standingsKey(contestID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate standings cache: %w", err)
	}
	return nil
}
