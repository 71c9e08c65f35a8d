package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// SnapshotRepoImpl implements the append-only SnapshotRepository on gorm.
type SnapshotRepoImpl struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSnapshotRepository creates the PostgreSQL snapshot repository.
func NewSnapshotRepository(db *gorm.DB, log logger.Logger) repository.SnapshotRepository {
	return &SnapshotRepoImpl{
		db:     db,
		logger: log.WithComponent("snapshot_repo"),
	}
}

// ListByTenant returns the tenant's snapshot history ordered by
// calculated_at ascending.
func (r *SnapshotRepoImpl) ListByTenant(ctx context.Context, tenantID string, tr *repository.TimeRange) ([]models.AnalyticsSnapshot, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("calculated_at ASC")
	query = applyTimeRange(query, "calculated_at", tr)

	var snapshots []models.AnalyticsSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		r.logger.Error(ctx, "Failed to list snapshots", err, logger.Fields{"tenant_id": tenantID})
		return nil, errors.ErrUpstreamData("list snapshots", err)
	}
	return snapshots, nil
}

// Append inserts a new snapshot. Snapshots are never updated or deleted, so
// this is a plain insert with no conflict handling.
func (r *SnapshotRepoImpl) Append(ctx context.Context, snapshot *models.AnalyticsSnapshot) error {
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		r.logger.Error(ctx, "Failed to append snapshot", err, logger.Fields{
			"tenant_id":   snapshot.TenantID,
			"snapshot_id": snapshot.ID,
		})
		return errors.ErrUpstreamData("append snapshot", err)
	}
	return nil
}
