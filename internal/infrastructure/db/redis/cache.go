package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/api/metrics"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

const defaultCacheTTL = 30 * time.Second

// DirectoryCache caches directory listing pages in Redis.
//
// Keys carry a version number that is bumped on every invalidation, so stale
// pages simply age out instead of being swept. Key format:
// directory:<version>:<page>:<limit>
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewDirectoryCache wraps the given Redis client. A default TTL is applied
// when none is provided.
func NewDirectoryCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *DirectoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &DirectoryCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached page, if present. Redis failures are logged and
// reported as a miss; the store stays authoritative.
func (c *DirectoryCache) Get(ctx context.Context, page, limit int) (*ports.TrainerPage, bool) {
	raw, err := c.client.Get(ctx, c.key(ctx, page, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("directory cache read failed")
		}
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var p ports.TrainerPage
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Msg("directory cache entry corrupt")
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
	return &p, true
}

// Set stores the page under the current version.
func (c *DirectoryCache) Set(ctx context.Context, page, limit int, p *ports.TrainerPage) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.log.Warn().Err(err).Msg("directory cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(ctx, page, limit), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("directory cache write failed")
	}
}

// Invalidate bumps the version counter, orphaning every cached page.
func (c *DirectoryCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, "directory:version").Err(); err != nil {
		c.log.Warn().Err(err).Msg("directory cache invalidation failed")
	}
}

func (c *DirectoryCache) key(ctx context.Context, page, limit int) string {
	version, err := c.client.Get(ctx, "directory:version").Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn().Err(err).Msg("directory cache version read failed")
	}
	return fmt.Sprintf("directory:%d:%d:%d", version, page, limit)
}
