package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"order-pricing-service/internal/ports"
)

// Zone assignments change rarely; a day of staleness is acceptable and
// keeps entries from outliving rate-table revisions.
const redisZoneTTL = 24 * time.Hour

const redisKeyPrefix = "zone:"

// Redis backed cache of zone-lookup results, a drop-in alternative to
// the SQLite cache for deployments that already run Redis.
type RedisZoneCache struct {
	client *redis.Client
}

func NewRedisZoneCache(client *redis.Client) *RedisZoneCache {
	return &RedisZoneCache{client: client}
}

func (r *RedisZoneCache) Get(ctx context.Context, address string) (*ports.ZoneInfo, error) {
	if address == "" {
		return nil, errors.New("get zone cache: address must not be empty")
	}

	raw, err := r.client.Get(ctx, redisKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get zone cache: redis get: %w", err)
	}

	var info ports.ZoneInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("get zone cache: decode entry: %w", err)
	}

	return &info, nil
}

func (r *RedisZoneCache) Put(ctx context.Context, address string, info ports.ZoneInfo) error {
	if address == "" {
		return errors.New("insert zone cache: address must not be empty")
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("insert zone cache: encode entry: %w", err)
	}

	if err := r.client.Set(ctx, redisKeyPrefix+address, payload, redisZoneTTL).Err(); err != nil {
		return fmt.Errorf("insert zone cache address=%q: redis set: %w", address, err)
	}

	return nil
}
