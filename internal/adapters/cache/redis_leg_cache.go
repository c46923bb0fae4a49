package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// Road networks change slowly; a month keeps hot selections cheap without
// pinning stale data forever.
const defaultLegTTL = 30 * 24 * time.Hour

// RedisLegCache is a TTL'd leg cache for deployments where several replicas
// share one cache.
type RedisLegCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLegCache(redisURL string, ttl time.Duration) (*RedisLegCache, error) {
	if ttl <= 0 {
		ttl = defaultLegTTL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis leg cache: parse url: %w", err)
	}

	return &RedisLegCache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

// NewRedisLegCacheFromClient wires an existing client, mainly for tests.
func NewRedisLegCacheFromClient(rdb *redis.Client, ttl time.Duration) *RedisLegCache {
	if ttl <= 0 {
		ttl = defaultLegTTL
	}
	return &RedisLegCache{rdb: rdb, ttl: ttl}
}

func (r *RedisLegCache) GetLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode ports.TravelMode,
) (ports.LegResult, bool, error) {
	val, err := r.rdb.Get(ctx, r.key(origin, destination, mode)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.LegResult{}, false, nil
	}
	if err != nil {
		return ports.LegResult{}, false, fmt.Errorf("redis leg cache: get: %w", err)
	}

	var meters, seconds int
	if _, err := fmt.Sscanf(val, "%d|%d", &meters, &seconds); err != nil {
		return ports.LegResult{}, false, fmt.Errorf("redis leg cache: malformed value %q: %w", val, err)
	}

	return ports.LegResult{DistanceMeters: meters, DurationSeconds: seconds}, true, nil
}

func (r *RedisLegCache) PutLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode ports.TravelMode,
	result ports.LegResult,
) error {
	val := fmt.Sprintf("%d|%d", result.DistanceMeters, result.DurationSeconds)

	if err := r.rdb.Set(ctx, r.key(origin, destination, mode), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis leg cache: set: %w", err)
	}
	return nil
}

func (r *RedisLegCache) key(origin, destination domain.Coordinates, mode ports.TravelMode) string {
	return "leg:" + string(mode) + ":" + coordKey(origin) + "|" + coordKey(destination)
}
