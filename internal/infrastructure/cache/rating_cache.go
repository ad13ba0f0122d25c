package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/roomease/roomease-backend/internal/domain"
)

// RatingCache keeps per-listing rating summaries in Redis. A nil cache is
// valid and behaves as a permanent miss, so the application runs without
// Redis the same way it runs with it.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{client: client, ttl: ttl}
}

func ratingKey(listingID string) string {
	return fmt.Sprintf("listing:%s:rating", listingID)
}

func (c *RatingCache) Get(ctx context.Context, listingID string) (domain.RatingSummary, bool) {
	if c == nil || c.client == nil {
		return domain.RatingSummary{}, false
	}
	raw, err := c.client.Get(ctx, ratingKey(listingID)).Bytes()
	if err != nil {
		return domain.RatingSummary{}, false
	}
	var summary domain.RatingSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return domain.RatingSummary{}, false
	}
	return summary, true
}

func (c *RatingCache) Set(ctx context.Context, listingID string, summary domain.RatingSummary) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the store stays authoritative.
	_ = c.client.Set(ctx, ratingKey(listingID), raw, c.ttl).Err()
}

func (c *RatingCache) Invalidate(ctx context.Context, listingID string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, ratingKey(listingID)).Err()
}
