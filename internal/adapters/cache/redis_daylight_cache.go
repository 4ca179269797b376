package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trail-itinerary-service/internal/ports"
)

// Redis-backed memoization of daylight model results.
//
// The model is pure, so entries never go stale; a TTL is still applied so
// an idle cache drains on its own. Keys quantize latitude to 4 decimals
// (~11 m) — well below any resolution the day-granularity simulator can
// observe — so nearby queries share entries.
type RedisDaylightCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDaylightCache(client *redis.Client, ttl time.Duration) *RedisDaylightCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDaylightCache{client: client, ttl: ttl}
}

func (c *RedisDaylightCache) Get(
	ctx context.Context,
	latitudeDeg float64,
	dayOfYear int,
) (ports.DaylightResult, bool, error) {
	if c.client == nil {
		return ports.DaylightResult{}, false, errors.New("daylight cache: redis client is nil")
	}

	raw, err := c.client.Get(ctx, daylightKey(latitudeDeg, dayOfYear)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.DaylightResult{}, false, nil
	}
	if err != nil {
		return ports.DaylightResult{}, false, fmt.Errorf("daylight cache: get: %w", err)
	}

	var res ports.DaylightResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return ports.DaylightResult{}, false, fmt.Errorf("daylight cache: decode entry: %w", err)
	}

	return res, true, nil
}

func (c *RedisDaylightCache) Put(
	ctx context.Context,
	latitudeDeg float64,
	dayOfYear int,
	res ports.DaylightResult,
) error {
	if c.client == nil {
		return errors.New("daylight cache: redis client is nil")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("daylight cache: encode entry: %w", err)
	}

	if err := c.client.Set(ctx, daylightKey(latitudeDeg, dayOfYear), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("daylight cache: set: %w", err)
	}

	return nil
}

func daylightKey(latitudeDeg float64, dayOfYear int) string {
	return fmt.Sprintf("daylight:%.4f:%d", latitudeDeg, dayOfYear)
}
