package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// BenchmarkRepoImpl implements BenchmarkRepository on gorm.
type BenchmarkRepoImpl struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewBenchmarkRepository creates the PostgreSQL benchmark repository.
func NewBenchmarkRepository(db *gorm.DB, log logger.Logger) repository.BenchmarkRepository {
	return &BenchmarkRepoImpl{
		db:     db,
		logger: log.WithComponent("benchmark_repo"),
	}
}

// GetByIndustry returns the industry's baseline table. An unknown industry
// yields an empty table, which the benchmark engine turns into an empty
// report.
func (r *BenchmarkRepoImpl) GetByIndustry(ctx context.Context, industry string) (models.BenchmarkTable, error) {
	var refs []models.BenchmarkReference
	err := r.db.WithContext(ctx).
		Where("industry = ?", industry).
		Find(&refs).Error
	if err != nil {
		r.logger.Error(ctx, "Failed to load benchmark table", err, logger.Fields{"industry": industry})
		return nil, errors.ErrUpstreamData("get benchmarks", err)
	}

	table := make(models.BenchmarkTable, len(refs))
	for _, ref := range refs {
		table[ref.Metric] = ref.AverageValue
	}
	return table, nil
}

// Upsert refreshes one baseline row, keyed by (industry, metric).
func (r *BenchmarkRepoImpl) Upsert(ctx context.Context, ref *models.BenchmarkReference) error {
	if ref.ID == "" {
		ref.ID = uuid.NewString()
	}
	ref.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "industry"}, {Name: "metric"}},
			DoUpdates: clause.AssignmentColumns([]string{"average_value", "updated_at"}),
		}).
		Create(ref).Error
	if err != nil {
		r.logger.Error(ctx, "Failed to upsert benchmark reference", err, logger.Fields{
			"industry": ref.Industry,
			"metric":   ref.Metric,
		})
		return errors.ErrUpstreamData("upsert benchmark", err)
	}
	return nil
}
