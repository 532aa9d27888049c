package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error matching
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// getJSON loads key into dest; found is false when the key does not exist
func getJSON(ctx context.Context, rdb redis.Cmdable, key string, dest any) (found bool, err error) {
	raw, err := rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil // Nothing cached
	case err != nil:
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err // Corrupt entry
	}
	return true, nil
}

// setJSON stores value under key as JSON for ttl
func setJSON(ctx context.Context, rdb redis.Cmdable, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, raw, ttl).Err()
}
