package cache

import (
	"context" // Context for Redis operations
	"time"    // TTL

	"card_transfer/internal/domain" // Importing domain models

	"github.com/redis/go-redis/v9" // Redis client
)

// LeaderboardKey is the Redis key holding the top users leaderboard
const LeaderboardKey = "transactions:top-users"

// Leaderboard caches the top users leaderboard in Redis as JSON
type Leaderboard struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewLeaderboard creates a Redis-backed leaderboard cache with the given TTL
func NewLeaderboard(rdb redis.Cmdable, ttl time.Duration) *Leaderboard {
	return &Leaderboard{rdb: rdb, ttl: ttl}
}

// Get returns the cached leaderboard, if present
func (l *Leaderboard) Get(ctx context.Context) (*domain.Leaderboard, bool, error) {
	var board domain.Leaderboard
	found, err := getJSON(ctx, l.rdb, LeaderboardKey, &board)
	if err != nil || !found {
		return nil, false, err
	}
	return &board, true, nil
}

// Set stores the leaderboard for the configured TTL
func (l *Leaderboard) Set(ctx context.Context, board *domain.Leaderboard) error {
	return setJSON(ctx, l.rdb, LeaderboardKey, board, l.ttl)
}

// Invalidate drops the cached leaderboard
func (l *Leaderboard) Invalidate(ctx context.Context) error {
	return l.rdb.Del(ctx, LeaderboardKey).Err()
}
