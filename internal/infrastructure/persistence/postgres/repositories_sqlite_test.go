package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// openTestDB gives each test its own in-memory sqlite database with the full
// schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DSN keeps every pooled connection of this test on
	// the same in-memory database while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.AssessmentRecord{},
		&models.ControlResponse{},
		&models.AnalyticsSnapshot{},
		&models.BenchmarkReference{},
	))
	return db
}

func TestTenantRepo_GetTenant(t *testing.T) {
	db := openTestDB(t)
	settings := json.RawMessage(`{"industry":"healthcare"}`)
	require.NoError(t, db.Create(&models.Tenant{
		TenantID:   "tenant-1",
		TenantName: "Acme Compliance",
		Industry:   "healthcare",
		Status:     models.TenantStatusActive,
		Settings:   settings,
	}).Error)
	repo := NewTenantRepository(db, logger.NewNoopLogger())

	tenant, err := repo.GetTenant(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Equal(t, "Acme Compliance", tenant.TenantName)
	assert.True(t, tenant.IsActive())
}

func TestTenantRepo_GetTenantNotFound(t *testing.T) {
	repo := NewTenantRepository(openTestDB(t), logger.NewNoopLogger())

	_, err := repo.GetTenant(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, constants.ErrCodeNotFound))
}

func TestTenantRepo_GetSettingsMissingDocument(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Tenant{
		TenantID: "tenant-1",
		Status:   models.TenantStatusActive,
	}).Error)
	repo := NewTenantRepository(db, logger.NewNoopLogger())

	settings, err := repo.GetSettings(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestAssessmentRepo_ListByTenantPreloadsResponses(t *testing.T) {
	db := openTestDB(t)
	maturity := 3
	require.NoError(t, db.Create(&models.AssessmentRecord{
		ID:        "a1",
		TenantID:  "tenant-1",
		Status:    constants.AssessmentStatusInProgress,
		CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Responses: []models.ControlResponse{
			{ID: "r1", ControlID: "AC-1", Domain: "access_control", Status: constants.ResponseStatusCompleted, MaturityLevel: &maturity},
			{ID: "r2", ControlID: "AC-2", Domain: "access_control", Status: constants.ResponseStatusPending},
		},
	}).Error)
	require.NoError(t, db.Create(&models.AssessmentRecord{
		ID:        "other",
		TenantID:  "tenant-2",
		Status:    constants.AssessmentStatusPending,
		CreatedAt: time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
	}).Error)
	repo := NewAssessmentRepository(db, logger.NewNoopLogger())

	assessments, err := repo.ListByTenant(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, "a1", assessments[0].ID)
	assert.Len(t, assessments[0].Responses, 2)
}

func TestAssessmentRepo_TimeRangeBounds(t *testing.T) {
	db := openTestDB(t)
	for i, day := range []int{1, 15, 28} {
		require.NoError(t, db.Create(&models.AssessmentRecord{
			ID:        string(rune('a' + i)),
			TenantID:  "tenant-1",
			Status:    constants.AssessmentStatusPending,
			CreatedAt: time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
		}).Error)
	}
	repo := NewAssessmentRepository(db, logger.NewNoopLogger())

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	assessments, err := repo.ListByTenant(context.Background(), "tenant-1", &repository.TimeRange{Start: &start, End: &end})

	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), assessments[0].CreatedAt)
}

func TestSnapshotRepo_AppendAndListOrdered(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	// Insert out of order; listing must come back ordered by calculated_at.
	for i, day := range []int{20, 5, 12} {
		require.NoError(t, repo.Append(ctx, &models.AnalyticsSnapshot{
			ID:                   string(rune('s' + i)),
			TenantID:             "tenant-1",
			CalculatedAt:         time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			CompletionPercentage: float64(10 * day),
		}))
	}

	snapshots, err := repo.ListByTenant(ctx, "tenant-1", nil)

	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, 5, snapshots[0].CalculatedAt.Day())
	assert.Equal(t, 12, snapshots[1].CalculatedAt.Day())
	assert.Equal(t, 20, snapshots[2].CalculatedAt.Day())
}

func TestBenchmarkRepo_UpsertAndGetByIndustry(t *testing.T) {
	db := openTestDB(t)
	repo := NewBenchmarkRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.BenchmarkReference{
		Industry:     "healthcare",
		Metric:       models.MetricCompletionRate,
		AverageValue: 78,
	}))
	require.NoError(t, repo.Upsert(ctx, &models.BenchmarkReference{
		Industry:     "healthcare",
		Metric:       models.MetricAvgMaturityScore,
		AverageValue: 3.1,
	}))
	// Re-upserting the same (industry, metric) refreshes the value.
	require.NoError(t, repo.Upsert(ctx, &models.BenchmarkReference{
		Industry:     "healthcare",
		Metric:       models.MetricCompletionRate,
		AverageValue: 82,
	}))

	table, err := repo.GetByIndustry(ctx, "healthcare")

	require.NoError(t, err)
	assert.Equal(t, models.BenchmarkTable{
		models.MetricCompletionRate:   82,
		models.MetricAvgMaturityScore: 3.1,
	}, table)
}

func TestBenchmarkRepo_UnknownIndustryIsEmpty(t *testing.T) {
	repo := NewBenchmarkRepository(openTestDB(t), logger.NewNoopLogger())

	table, err := repo.GetByIndustry(context.Background(), "cottage_cheese")

	require.NoError(t, err)
	assert.Empty(t, table)
}
