package postgres

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// TenantRepoImpl implements TenantSettingsRepository on gorm.
type TenantRepoImpl struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewTenantRepository creates the PostgreSQL tenant repository.
func NewTenantRepository(db *gorm.DB, log logger.Logger) repository.TenantSettingsRepository {
	return &TenantRepoImpl{
		db:     db,
		logger: log.WithComponent("tenant_repo"),
	}
}

// GetTenant returns the tenant row, or a not_found error.
func (r *TenantRepoImpl) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&tenant).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound("tenant").WithMetadata("tenant_id", tenantID)
		}
		r.logger.Error(ctx, "Failed to load tenant", err, logger.Fields{"tenant_id": tenantID})
		return nil, errors.ErrUpstreamData("get tenant", err)
	}
	return &tenant, nil
}

// GetSettings returns the tenant's raw settings document. A tenant without a
// settings document yields nil and no error.
func (r *TenantRepoImpl) GetSettings(ctx context.Context, tenantID string) (json.RawMessage, error) {
	tenant, err := r.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(tenant.Settings) == 0 {
		return nil, nil
	}
	return tenant.Settings, nil
}
