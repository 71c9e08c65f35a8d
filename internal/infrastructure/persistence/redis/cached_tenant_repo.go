package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// CachedTenantRepo decorates the tenant repository with a Redis cache for the
// settings document, which is read on every classification. Cache failures
// degrade to the inner repository; they never fail the request.
type CachedTenantRepo struct {
	inner repository.TenantSettingsRepository
	cache CacheManager
	log   logger.Logger
}

// NewCachedTenantRepo wraps the given tenant repository.
func NewCachedTenantRepo(inner repository.TenantSettingsRepository, cache CacheManager, log logger.Logger) repository.TenantSettingsRepository {
	return &CachedTenantRepo{
		inner: inner,
		cache: cache,
		log:   log.WithComponent("cached_tenant_repo"),
	}
}

// GetTenant is a pass-through: the full row carries status and must stay
// fresh.
func (r *CachedTenantRepo) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	return r.inner.GetTenant(ctx, tenantID)
}

// GetSettings serves the settings document from cache when present.
func (r *CachedTenantRepo) GetSettings(ctx context.Context, tenantID string) (json.RawMessage, error) {
	key := settingsKey(tenantID)

	var cached json.RawMessage
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.log.Warn(ctx, "Settings cache read failed", logger.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		})
	} else if found {
		return cached, nil
	}

	settings, err := r.inner.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if settings != nil {
		if err := r.cache.Set(ctx, key, settings, constants.TenantSettingsCacheTTL); err != nil {
			r.log.Warn(ctx, "Settings cache write failed", logger.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			})
		}
	}
	return settings, nil
}

func settingsKey(tenantID string) string {
	return fmt.Sprintf("tenant:settings:%s", tenantID)
}
