package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardKeyPrefix = "fitquest:leaderboard:"

type redisLeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLeaderboardCache caches ranked boards as JSON with a short TTL.
func NewRedisLeaderboardCache(client *redis.Client, ttl time.Duration) LeaderboardCache {
	return &redisLeaderboardCache{client: client, ttl: ttl}
}

func (c *redisLeaderboardCache) Get(ctx context.Context, period string) ([]LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, leaderboardKeyPrefix+period).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read leaderboard cache: %w", err)
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode leaderboard cache: %w", err)
	}
	return entries, true, nil
}

func (c *redisLeaderboardCache) Set(ctx context.Context, period string, entries []LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard cache: %w", err)
	}
	if err := c.client.Set(ctx, leaderboardKeyPrefix+period, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write leaderboard cache: %w", err)
	}
	return nil
}
