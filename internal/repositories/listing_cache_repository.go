package repositories

import (
	"context"
	"encoding/json"
	"time"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/pkg/cache"
	"primecasa-catalog/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// listing pages go stale with every admin edit, so they carry a TTL unlike
// the in-process resolver caches
const listingPageTTL = 10 * time.Minute

type listingCache struct {
	client *redis.Client
}

func NewListingCache(client *redis.Client) ListingCache {
	return &listingCache{client: client}
}

func (c *listingCache) GetPage(ctx context.Context, key string) (*models.PageResult, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		return nil, cache.NewCacheError("get", err, true)
	}
	var page models.PageResult
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		return nil, cache.NewCacheError("unmarshal", err, false)
	}
	return &page, nil
}

func (c *listingCache) SetPage(ctx context.Context, key string, page *models.PageResult) error {
	data, err := json.Marshal(page)
	if err != nil {
		return cache.NewCacheError("marshal", err, false)
	}
	start := time.Now()
	err = c.client.Set(ctx, key, data, listingPageTTL).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		return cache.NewCacheError("set", err, true)
	}
	return nil
}

func (c *listingCache) AddPageKeyToPropertySet(ctx context.Context, propertyID, pageKey string) error {
	start := time.Now()
	err := c.client.SAdd(ctx, cache.PropertyKeysSetKey(propertyID), pageKey).Err()
	metrics.RedisOperationDuration.WithLabelValues("sadd").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("sadd").Inc()
		return cache.NewCacheError("sadd", err, true)
	}
	return nil
}

func (c *listingCache) InvalidateProperty(ctx context.Context, propertyID string) error {
	setKey := cache.PropertyKeysSetKey(propertyID)
	start := time.Now()
	keys, err := c.client.SMembers(ctx, setKey).Result()
	metrics.RedisOperationDuration.WithLabelValues("smembers").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("smembers").Inc()
		return cache.NewCacheError("smembers", err, true)
	}
	for _, key := range keys {
		start := time.Now()
		err = c.client.Del(ctx, key).Err()
		metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
		if err != nil && err != redis.Nil {
			metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		}
	}
	start = time.Now()
	err = c.client.Del(ctx, setKey).Err()
	metrics.RedisOperationDuration.WithLabelValues("del_set").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("del_set").Inc()
		return cache.NewCacheError("del_set", err, true)
	}
	return nil
}

func (c *listingCache) Clear(ctx context.Context) error {
	start := time.Now()
	err := c.client.FlushDB(ctx).Err()
	metrics.RedisOperationDuration.WithLabelValues("flush_db").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("flush_db").Inc()
		return cache.NewCacheError("flush_db", err, true)
	}
	return nil
}
