package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func reportCacheKey(vendorID string) string {
	return fmt.Sprintf("report:vendor:%s", vendorID)
}

// dropVendorSummary removes one vendor's cached score summary. Safe to call
// with a nil cache; invalidation failures are logged, never surfaced.
func dropVendorSummary(ctx context.Context, cache *redis.Client, logger zerolog.Logger, vendorID string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, reportCacheKey(vendorID)).Err(); err != nil {
		logger.Warn().Err(err).Str("vendor_id", vendorID).Msg("failed to invalidate score cache")
	}
}

// dropAllSummaries removes every cached score summary. Catalog edits change
// the scoring inputs for all vendors at once, so no per-vendor key survives.
func dropAllSummaries(ctx context.Context, cache *redis.Client, logger zerolog.Logger) {
	if cache == nil {
		return
	}

	iter := cache.Scan(ctx, 0, reportCacheKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := cache.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn().Err(err).Str("key", iter.Val()).Msg("failed to invalidate score cache")
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn().Err(err).Msg("failed to scan score cache keys")
	}
}
