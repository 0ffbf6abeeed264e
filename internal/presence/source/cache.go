package source

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jayvaglio/online-presence-app/internal/common/cache"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/common/metrics"
	"github.com/jayvaglio/online-presence-app/internal/models"
)

const cacheKeyPrefix = "presence:search:"

// Cached wraps a Source with a Redis TTL cache of JSON-encoded item lists.
// Cache failures degrade silently to a live fetch; a cache round-trip never
// fails a request.
type Cached struct {
	inner  Source
	redis  *cache.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCached(inner Source, redisClient *cache.RedisClient, ttl time.Duration, log logger.Logger) *Cached {
	return &Cached{
		inner:  inner,
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"source": "cache"}),
	}
}

func (c *Cached) Fetch(ctx context.Context, query string) ([]models.ResultItem, error) {
	key := cacheKeyPrefix + query

	if raw, err := c.redis.Get(ctx, key); err == nil {
		var items []models.ResultItem
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			metrics.CacheOpsTotal.WithLabelValues("hit").Inc()
			return items, nil
		}
		// Undecodable entry: treat as a miss and overwrite below.
		metrics.CacheOpsTotal.WithLabelValues("error").Inc()
	} else {
		metrics.CacheOpsTotal.WithLabelValues("miss").Inc()
	}

	items, err := c.inner.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.WithError(err).Warn("cache write failed", map[string]interface{}{
				"query": query,
			})
		}
	}

	return items, nil
}
