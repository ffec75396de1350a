package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/api/metrics"
	"github.com/reportlab/account-service/internal/core/domain"
)

const pageTTL = 60 * time.Second

// PageCache memoises admin user-listing pages in Redis for a short TTL.
// Key format: users:page:<offset>:<limit>
//
// The cache is advisory: every failure degrades to a miss, and writes are
// never invalidated. A stale read up to the TTL is accepted.
type PageCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewPageCache(client *redis.Client, logger zerolog.Logger) *PageCache {
	return &PageCache{client: client, logger: logger}
}

func (c *PageCache) GetPage(ctx context.Context, offset, limit int) ([]domain.User, bool) {
	data, err := c.client.Get(ctx, c.key(offset, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("listing cache read failed")
		}
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		c.logger.Warn().Err(err).Msg("listing cache entry corrupt")
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return users, true
}

func (c *PageCache) SetPage(ctx context.Context, offset, limit int, users []domain.User) {
	data, err := json.Marshal(users)
	if err != nil {
		c.logger.Warn().Err(err).Msg("listing cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(offset, limit), data, pageTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("listing cache write failed")
	}
}

func (c *PageCache) key(offset, limit int) string {
	return fmt.Sprintf("users:page:%d:%d", offset, limit)
}
