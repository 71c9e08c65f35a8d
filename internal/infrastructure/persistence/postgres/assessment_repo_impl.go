package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// AssessmentRepoImpl implements AssessmentRepository on gorm.
type AssessmentRepoImpl struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewAssessmentRepository creates the PostgreSQL assessment repository.
func NewAssessmentRepository(db *gorm.DB, log logger.Logger) repository.AssessmentRepository {
	return &AssessmentRepoImpl{
		db:     db,
		logger: log.WithComponent("assessment_repo"),
	}
}

// ListByTenant returns the tenant's assessments with responses preloaded.
// Responses are eagerly loaded in one extra query so the analytics components
// never trigger per-row lookups.
func (r *AssessmentRepoImpl) ListByTenant(ctx context.Context, tenantID string, tr *repository.TimeRange) ([]models.AssessmentRecord, error) {
	query := r.db.WithContext(ctx).
		Preload("Responses").
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC")
	query = applyTimeRange(query, "created_at", tr)

	var assessments []models.AssessmentRecord
	if err := query.Find(&assessments).Error; err != nil {
		r.logger.Error(ctx, "Failed to list assessments", err, logger.Fields{"tenant_id": tenantID})
		return nil, errors.ErrUpstreamData("list assessments", err)
	}
	return assessments, nil
}

// applyTimeRange narrows a query to [Start, End] on the given column. Nil
// bounds stay open.
func applyTimeRange(query *gorm.DB, column string, tr *repository.TimeRange) *gorm.DB {
	if tr == nil {
		return query
	}
	if tr.Start != nil {
		query = query.Where(column+" >= ?", *tr.Start)
	}
	if tr.End != nil {
		query = query.Where(column+" <= ?", *tr.End)
	}
	return query
}
