// Package service contains the application services orchestrating the
// analytics use cases: fetching raw records through the repository
// interfaces, running the stateless domain components, and emitting the
// resulting events and metrics.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/repository"
	"github.com/praxisgrc/praxis/internal/domain/service"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
	"github.com/praxisgrc/praxis/pkg/utils"
)

// EventPublisher publishes analytics lifecycle events to the event bus. The
// kafka implementation lives in internal/infrastructure/events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType constants.EventType, tenantID string, payload interface{}) error
}

// AnalysisObserver records per-analysis observability signals. The prometheus
// implementation lives in internal/infrastructure/monitoring.
type AnalysisObserver interface {
	ObserveAnalysis(analysisType, result string, duration time.Duration)
}

// AnalyticsAppService dispatches analysis requests to the domain components.
type AnalyticsAppService interface {
	// RunAnalysis validates the selector, fetches the tenant's data and runs
	// the selected analysis. An insufficient-data condition is a successful
	// response; only unknown selectors, unknown tenants and data faults
	// return errors.
	RunAnalysis(ctx context.Context, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error)
}

type analyticsAppServiceImpl struct {
	tenantRepo     repository.TenantSettingsRepository
	assessmentRepo repository.AssessmentRepository
	snapshotRepo   repository.SnapshotRepository
	benchmarkRepo  repository.BenchmarkRepository
	publisher      EventPublisher
	observer       AnalysisObserver
	logger         logger.Logger
}

// NewAnalyticsAppService creates the analytics dispatcher.
func NewAnalyticsAppService(
	tenantRepo repository.TenantSettingsRepository,
	assessmentRepo repository.AssessmentRepository,
	snapshotRepo repository.SnapshotRepository,
	benchmarkRepo repository.BenchmarkRepository,
	publisher EventPublisher,
	observer AnalysisObserver,
	log logger.Logger,
) AnalyticsAppService {
	return &analyticsAppServiceImpl{
		tenantRepo:     tenantRepo,
		assessmentRepo: assessmentRepo,
		snapshotRepo:   snapshotRepo,
		benchmarkRepo:  benchmarkRepo,
		publisher:      publisher,
		observer:       observer,
		logger:         log.WithComponent("analytics_app_service"),
	}
}

// RunAnalysis dispatches one analysis request.
func (s *analyticsAppServiceImpl) RunAnalysis(ctx context.Context, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	start := time.Now()

	if !constants.IsValidAnalysisType(req.AnalysisType) {
		s.observer.ObserveAnalysis(req.AnalysisType, "rejected", time.Since(start))
		return nil, errors.ErrUnknownAnalysisType(req.AnalysisType)
	}

	tenant, err := s.tenantRepo.GetTenant(ctx, req.TenantID)
	if err != nil {
		s.observer.ObserveAnalysis(req.AnalysisType, "error", time.Since(start))
		return nil, err
	}
	if !tenant.IsActive() {
		s.observer.ObserveAnalysis(req.AnalysisType, "rejected", time.Since(start))
		return nil, errors.ErrTenantForbidden(req.TenantID)
	}

	tr := toTimeRange(req.TimeRange)

	var result interface{}
	switch constants.AnalysisType(req.AnalysisType) {
	case constants.AnalysisAssessmentProgress:
		result, err = s.runAssessmentProgress(ctx, tenant, tr)
	case constants.AnalysisBenchmarking:
		result, err = s.runBenchmarking(ctx, tenant, req.BenchmarkCriteria, tr)
	case constants.AnalysisPredictiveScoring:
		result, err = s.runPredictiveScoring(ctx, tenant.TenantID, tr)
	case constants.AnalysisRiskHeatmap:
		result, err = s.runRiskHeatmap(ctx, tenant.TenantID, tr)
	case constants.AnalysisComplianceTrends:
		result, err = s.runComplianceTrends(ctx, tenant.TenantID, tr)
	}
	if err != nil {
		s.observer.ObserveAnalysis(req.AnalysisType, "error", time.Since(start))
		if errors.ShouldLog(err) {
			s.logger.Error(ctx, "Analysis failed", err, logger.Fields{
				"analysis_type": req.AnalysisType,
				"tenant_id":     req.TenantID,
			})
		}
		return nil, err
	}

	s.observer.ObserveAnalysis(req.AnalysisType, "success", time.Since(start))
	s.publishEvent(ctx, constants.EventTypeAnalysisCompleted, req.TenantID, map[string]interface{}{
		"analysis_type": req.AnalysisType,
	})

	return &dto.AnalysisResponse{
		Success:      true,
		AnalysisType: req.AnalysisType,
		TenantID:     req.TenantID,
		GeneratedAt:  time.Now().UTC(),
		Result:       result,
	}, nil
}

func (s *analyticsAppServiceImpl) runAssessmentProgress(ctx context.Context, tenant *models.Tenant, tr *repository.TimeRange) (interface{}, error) {
	assessments, err := s.assessmentRepo.ListByTenant(ctx, tenant.TenantID, tr)
	if err != nil {
		return nil, err
	}

	summary, err := service.AggregateTenantProgress(ctx, assessments, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.appendSnapshot(ctx, tenant.TenantID, summary, assessments)
	return summary, nil
}

// appendSnapshot persists a new time-series point after a progress analysis.
// The analysis result is already computed, so a failed append is logged and
// does not fail the request.
func (s *analyticsAppServiceImpl) appendSnapshot(ctx context.Context, tenantID string, summary *service.TenantProgressSummary, assessments []models.AssessmentRecord) {
	now := time.Now().UTC()
	snapshot := &models.AnalyticsSnapshot{
		ID:                   uuid.NewString(),
		TenantID:             tenantID,
		CalculatedAt:         now,
		CompletionPercentage: summary.OverallCompletionRate,
		AvgMaturityScore:     summary.AvgMaturityScore,
		ComplianceScore:      complianceScore(summary),
		TimeToCompleteDays:   timeToCompleteDays(assessments),
	}

	if err := s.snapshotRepo.Append(ctx, snapshot); err != nil {
		s.logger.Error(ctx, "Failed to append analytics snapshot", err, logger.Fields{
			"tenant_id": tenantID,
		})
		return
	}

	s.publishEvent(ctx, constants.EventTypeSnapshotAppended, tenantID, map[string]interface{}{
		"snapshot_id":           snapshot.ID,
		"completion_percentage": snapshot.CompletionPercentage,
		"avg_maturity_score":    snapshot.AvgMaturityScore,
	})
}

func (s *analyticsAppServiceImpl) runBenchmarking(ctx context.Context, tenant *models.Tenant, criteria *dto.BenchmarkCriteria, tr *repository.TimeRange) (interface{}, error) {
	industry := tenant.Industry
	if criteria != nil && criteria.Industry != "" {
		industry = criteria.Industry
	}
	if industry == "" {
		return nil, errors.ErrInvalidRequest("benchmarking requires an industry, either configured on the tenant or passed in benchmark_criteria")
	}

	// Assessments, snapshot history and the baseline table are independent
	// reads, fetched in parallel.
	var (
		assessments []models.AssessmentRecord
		snapshots   []models.AnalyticsSnapshot
		table       models.BenchmarkTable
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assessments, err = s.assessmentRepo.ListByTenant(gctx, tenant.TenantID, tr)
		return err
	})
	g.Go(func() error {
		var err error
		snapshots, err = s.snapshotRepo.ListByTenant(gctx, tenant.TenantID, tr)
		return err
	})
	g.Go(func() error {
		var err error
		table, err = s.benchmarkRepo.GetByIndustry(gctx, industry)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary, err := service.AggregateTenantProgress(ctx, assessments, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	tenantMetrics := map[string]float64{
		models.MetricCompletionRate:   summary.OverallCompletionRate,
		models.MetricAvgMaturityScore: summary.AvgMaturityScore,
	}
	if len(snapshots) > 0 {
		latest := snapshots[len(snapshots)-1]
		tenantMetrics[models.MetricComplianceScore] = latest.ComplianceScore
		tenantMetrics[models.MetricTimeToCompleteDay] = latest.TimeToCompleteDays
	}

	return service.CompareBenchmarks(tenantMetrics, table, industry), nil
}

func (s *analyticsAppServiceImpl) runPredictiveScoring(ctx context.Context, tenantID string, tr *repository.TimeRange) (interface{}, error) {
	snapshots, err := s.snapshotRepo.ListByTenant(ctx, tenantID, tr)
	if err != nil {
		return nil, err
	}

	report, insufficient, err := service.ScorePredictive(ctx, snapshots)
	if err != nil {
		return nil, err
	}
	if insufficient != nil {
		return insufficient, nil
	}
	return report, nil
}

func (s *analyticsAppServiceImpl) runRiskHeatmap(ctx context.Context, tenantID string, tr *repository.TimeRange) (interface{}, error) {
	assessments, err := s.assessmentRepo.ListByTenant(ctx, tenantID, tr)
	if err != nil {
		return nil, err
	}
	return service.BuildRiskHeatmap(ctx, assessments)
}

func (s *analyticsAppServiceImpl) runComplianceTrends(ctx context.Context, tenantID string, tr *repository.TimeRange) (interface{}, error) {
	snapshots, err := s.snapshotRepo.ListByTenant(ctx, tenantID, tr)
	if err != nil {
		return nil, err
	}

	report, insufficient, err := service.AnalyzeComplianceTrends(ctx, snapshots)
	if err != nil {
		return nil, err
	}
	if insufficient != nil {
		return insufficient, nil
	}
	return report, nil
}

// publishEvent emits a lifecycle event. The bus is best-effort from the
// request's point of view; failures are logged and swallowed.
func (s *analyticsAppServiceImpl) publishEvent(ctx context.Context, eventType constants.EventType, tenantID string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, tenantID, payload); err != nil {
		s.logger.Warn(ctx, "Failed to publish analytics event", logger.Fields{
			"event_type": string(eventType),
			"tenant_id":  tenantID,
			"error":      err.Error(),
		})
	}
}

func toTimeRange(tr *dto.TimeRangeDTO) *repository.TimeRange {
	if tr == nil {
		return nil
	}
	return &repository.TimeRange{Start: tr.Start, End: tr.End}
}

// complianceScore derives the 0-100 compliance index persisted with each
// snapshot: completion weighted 60%, normalized maturity weighted 40%.
func complianceScore(summary *service.TenantProgressSummary) float64 {
	maturityPct := summary.AvgMaturityScore / constants.MaturityLevelMax * 100
	return utils.Round2(summary.OverallCompletionRate*0.6 + maturityPct*0.4)
}

// timeToCompleteDays averages, over completed assessments, the days between
// creation and the last answered response. Assessments still in progress do
// not contribute.
func timeToCompleteDays(assessments []models.AssessmentRecord) float64 {
	var sum float64
	var count int
	for i := range assessments {
		a := &assessments[i]
		if a.Status != constants.AssessmentStatusCompleted {
			continue
		}

		var last *time.Time
		for j := range a.Responses {
			answered := a.Responses[j].AnsweredAt
			if answered != nil && (last == nil || answered.After(*last)) {
				last = answered
			}
		}
		if last == nil {
			continue
		}

		sum += last.Sub(a.CreatedAt).Hours() / 24
		count++
	}

	if count == 0 {
		return 0
	}
	return utils.Round2(sum / float64(count))
}
