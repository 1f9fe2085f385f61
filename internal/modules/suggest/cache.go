// README: Redis-backed cache for the trending suggestion set.
package suggest

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	trendingKey = "suggest:trending"
	trendingTTL = time.Hour
)

// Cache stores precomputed suggestion sets in redis. Failures degrade to a
// cache miss; the service always recomputes rather than erroring.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) GetTrending(ctx context.Context) ([]TripSuggestion, bool) {
	raw, err := c.rdb.Get(ctx, trendingKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("suggest: trending cache read failed: %v", err)
		}
		return nil, false
	}

	var trending []TripSuggestion
	if err := json.Unmarshal(raw, &trending); err != nil {
		log.Printf("suggest: stale trending cache entry dropped: %v", err)
		return nil, false
	}
	return trending, true
}

func (c *Cache) SetTrending(ctx context.Context, trending []TripSuggestion) error {
	raw, err := json.Marshal(trending)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, trendingKey, raw, trendingTTL).Err()
}
