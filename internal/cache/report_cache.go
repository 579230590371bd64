// Package cache holds a small redis-backed cache for report results. Reports
// are pure reads over invoices and expenses, so a short TTL keeps dashboards
// cheap without risking stale ledger data.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/managekarlo/backoffice/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewReportCache returns a cache backed by redis when REDIS_ADDR is set, or a
// disabled cache otherwise.
func NewReportCache(cfg config.Config, log *zap.Logger) *ReportCache {
	c := &ReportCache{
		ttl: cfg.ReportCacheTTL,
		log: log.Named("cache.report"),
	}
	if cfg.RedisAddr == "" {
		return c
	}
	c.rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return c
}

func (c *ReportCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Debug("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Key builds the cache key for one tenant's report.
func Key(tenantID, period, anchor string) string {
	return fmt.Sprintf("report:%s:%s:%s", tenantID, period, anchor)
}

var Module = fx.Module("cache",
	fx.Provide(NewReportCache),
)
