package redis

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// CachedBenchmarkRepo decorates the benchmark repository with two cache
// tiers: an in-process go-cache for the hot path and Redis shared across
// instances. Baseline tables change rarely, so both tiers run long TTLs.
type CachedBenchmarkRepo struct {
	inner repository.BenchmarkRepository
	local *gocache.Cache
	cache CacheManager
	log   logger.Logger
}

// NewCachedBenchmarkRepo wraps the given benchmark repository.
func NewCachedBenchmarkRepo(inner repository.BenchmarkRepository, cache CacheManager, log logger.Logger) repository.BenchmarkRepository {
	return &CachedBenchmarkRepo{
		inner: inner,
		local: gocache.New(constants.BenchmarkLocalCacheTTL, 2*constants.BenchmarkLocalCacheTTL),
		cache: cache,
		log:   log.WithComponent("cached_benchmark_repo"),
	}
}

// GetByIndustry serves the baseline table from the first tier that has it.
func (r *CachedBenchmarkRepo) GetByIndustry(ctx context.Context, industry string) (models.BenchmarkTable, error) {
	key := benchmarkKey(industry)

	if v, ok := r.local.Get(key); ok {
		return v.(models.BenchmarkTable), nil
	}

	var cached models.BenchmarkTable
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.log.Warn(ctx, "Benchmark cache read failed", logger.Fields{
			"industry": industry,
			"error":    err.Error(),
		})
	} else if found {
		r.local.SetDefault(key, cached)
		return cached, nil
	}

	table, err := r.inner.GetByIndustry(ctx, industry)
	if err != nil {
		return nil, err
	}

	r.local.SetDefault(key, table)
	if err := r.cache.Set(ctx, key, table, constants.BenchmarkCacheTTL); err != nil {
		r.log.Warn(ctx, "Benchmark cache write failed", logger.Fields{
			"industry": industry,
			"error":    err.Error(),
		})
	}
	return table, nil
}

// Upsert writes through to the inner repository and invalidates both tiers.
func (r *CachedBenchmarkRepo) Upsert(ctx context.Context, ref *models.BenchmarkReference) error {
	if err := r.inner.Upsert(ctx, ref); err != nil {
		return err
	}

	key := benchmarkKey(ref.Industry)
	r.local.Delete(key)
	if err := r.cache.Delete(ctx, key); err != nil {
		r.log.Warn(ctx, "Benchmark cache invalidation failed", logger.Fields{
			"industry": ref.Industry,
			"error":    err.Error(),
		})
	}
	return nil
}

func benchmarkKey(industry string) string {
	return fmt.Sprintf("benchmark:table:%s", industry)
}
