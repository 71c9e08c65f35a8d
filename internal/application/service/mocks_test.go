package service_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/pkg/constants"
)

type mockTenantRepo struct {
	mock.Mock
}

func (m *mockTenantRepo) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *mockTenantRepo) GetSettings(ctx context.Context, tenantID string) (json.RawMessage, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type mockAssessmentRepo struct {
	mock.Mock
}

func (m *mockAssessmentRepo) ListByTenant(ctx context.Context, tenantID string, tr *repository.TimeRange) ([]models.AssessmentRecord, error) {
	args := m.Called(ctx, tenantID, tr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssessmentRecord), args.Error(1)
}

type mockSnapshotRepo struct {
	mock.Mock
}

func (m *mockSnapshotRepo) ListByTenant(ctx context.Context, tenantID string, tr *repository.TimeRange) ([]models.AnalyticsSnapshot, error) {
	args := m.Called(ctx, tenantID, tr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AnalyticsSnapshot), args.Error(1)
}

func (m *mockSnapshotRepo) Append(ctx context.Context, snapshot *models.AnalyticsSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type mockBenchmarkRepo struct {
	mock.Mock
}

func (m *mockBenchmarkRepo) GetByIndustry(ctx context.Context, industry string) (models.BenchmarkTable, error) {
	args := m.Called(ctx, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.BenchmarkTable), args.Error(1)
}

func (m *mockBenchmarkRepo) Upsert(ctx context.Context, ref *models.BenchmarkReference) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, eventType constants.EventType, tenantID string, payload interface{}) error {
	args := m.Called(ctx, eventType, tenantID, payload)
	return args.Error(0)
}

type mockAnalysisObserver struct {
	mock.Mock
}

func (m *mockAnalysisObserver) ObserveAnalysis(analysisType, result string, duration time.Duration) {
	m.Called(analysisType, result, duration)
}
