// Package constants defines system-wide constants for the Praxis GRC analytics service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Analysis Type Constants
// ================================================================================

// AnalysisType selects which analytics component handles a request.
type AnalysisType string

const (
	// AnalysisAssessmentProgress computes per-assessment and tenant-wide completion metrics
	AnalysisAssessmentProgress AnalysisType = "assessment_progress"

	// AnalysisBenchmarking compares tenant metrics against industry baselines
	AnalysisBenchmarking AnalysisType = "benchmarking"

	// AnalysisPredictiveScoring computes trends and risk-area flags from snapshot history
	AnalysisPredictiveScoring AnalysisType = "predictive_scoring"

	// AnalysisRiskHeatmap aggregates control maturity into per-domain risk scores
	AnalysisRiskHeatmap AnalysisType = "risk_heatmap"

	// AnalysisComplianceTrends derives trend insights from historical snapshots
	AnalysisComplianceTrends AnalysisType = "compliance_trends"
)

// AnalysisTypes lists every selector the dispatcher accepts.
var AnalysisTypes = []AnalysisType{
	AnalysisAssessmentProgress,
	AnalysisBenchmarking,
	AnalysisPredictiveScoring,
	AnalysisRiskHeatmap,
	AnalysisComplianceTrends,
}

// IsValidAnalysisType reports whether t is a known analysis selector.
func IsValidAnalysisType(t string) bool {
	for _, a := range AnalysisTypes {
		if string(a) == t {
			return true
		}
	}
	return false
}

// ================================================================================
// Risk Matrix Constants
// ================================================================================

// MatrixType is the dimension discriminant of a tenant risk matrix.
type MatrixType string

const (
	// Matrix3x3 is a 3-level probability/impact matrix (no critical bucket)
	Matrix3x3 MatrixType = "3x3"

	// Matrix4x4 is a 4-level probability/impact matrix
	Matrix4x4 MatrixType = "4x4"

	// Matrix5x5 is the default 5-level probability/impact matrix
	Matrix5x5 MatrixType = "5x5"
)

// Dimension returns the probability/impact bound of the matrix.
func (m MatrixType) Dimension() int {
	switch m {
	case Matrix3x3:
		return 3
	case Matrix4x4:
		return 4
	default:
		return 5
	}
}

// RiskLabel is a qualitative risk classification produced by the matrix lookup.
// Labels are the product's canonical Portuguese strings and must not be localized here.
type RiskLabel string

const (
	// RiskLabelCritical is returned when the score falls in the critical bucket
	RiskLabelCritical RiskLabel = "Crítico"

	// RiskLabelVeryHigh is the display label for the default 5x5 critical band
	RiskLabelVeryHigh RiskLabel = "Muito Alto"

	// RiskLabelHigh is returned when the score falls in the high bucket
	RiskLabelHigh RiskLabel = "Alto"

	// RiskLabelMedium is returned when the score falls in the medium bucket
	RiskLabelMedium RiskLabel = "Médio"

	// RiskLabelLow is returned when the score falls in the low bucket
	RiskLabelLow RiskLabel = "Baixo"

	// RiskLabelVeryLow is the unmatched-score fallback for 5x5 and 3x3 matrices
	RiskLabelVeryLow RiskLabel = "Muito Baixo"
)

// ================================================================================
// Assessment Constants
// ================================================================================

// AssessmentStatus represents the lifecycle status of an assessment.
type AssessmentStatus string

const (
	// AssessmentStatusPending indicates the assessment has not been started
	AssessmentStatusPending AssessmentStatus = "pending"

	// AssessmentStatusInProgress indicates at least one response has been recorded
	AssessmentStatusInProgress AssessmentStatus = "in_progress"

	// AssessmentStatusCompleted indicates every control has been answered
	AssessmentStatusCompleted AssessmentStatus = "completed"
)

// ResponseStatus represents the status of a single control response.
type ResponseStatus string

const (
	// ResponseStatusPending indicates the control has not been answered
	ResponseStatusPending ResponseStatus = "pending"

	// ResponseStatusInProgress indicates the control answer is being drafted
	ResponseStatusInProgress ResponseStatus = "in_progress"

	// ResponseStatusCompleted indicates the control has been answered
	ResponseStatusCompleted ResponseStatus = "completed"
)

const (
	// MaturityLevelMin is the lowest ordinal maturity score (ad hoc)
	MaturityLevelMin = 1

	// MaturityLevelMax is the highest ordinal maturity score (optimizing)
	MaturityLevelMax = 5

	// RiskScoreHighThreshold flags an individual control as high risk (risk_score >= 4)
	RiskScoreHighThreshold = 4.0

	// DomainRiskHighThreshold flags a whole domain as high risk (avg_risk_score >= 3.5)
	DomainRiskHighThreshold = 3.5
)

// ================================================================================
// Trend Analysis Constants
// ================================================================================

// TrendDirection classifies the movement of a metric series.
type TrendDirection string

const (
	// TrendImproving indicates the second-half mean grew more than 5%
	TrendImproving TrendDirection = "improving"

	// TrendDeclining indicates the second-half mean fell more than 5%
	TrendDeclining TrendDirection = "declining"

	// TrendStable indicates the change stayed within the +-5% band
	TrendStable TrendDirection = "stable"

	// TrendInsufficientData indicates the series is too short to classify
	TrendInsufficientData TrendDirection = "insufficient_data"
)

const (
	// TrendMinDataPoints is the minimum series length for trend classification
	TrendMinDataPoints = 2

	// PredictiveMinSnapshots is the minimum snapshot history for predictive scoring
	PredictiveMinSnapshots = 3

	// TrendChangeThresholdPct is the +-% band separating stable from moving trends
	TrendChangeThresholdPct = 5.0

	// TrendConfidenceCap is the upper bound of a trend confidence score
	TrendConfidenceCap = 95.0
)

// ================================================================================
// Predictive Risk Area Constants
// ================================================================================

// RiskArea is a flag raised by the predictive scorer from the latest snapshot.
type RiskArea string

const (
	// RiskAreaLowCompletion flags completion_percentage below 50
	RiskAreaLowCompletion RiskArea = "low_completion_rate"

	// RiskAreaLowMaturity flags avg_maturity_score below 2.5
	RiskAreaLowMaturity RiskArea = "low_maturity_scores"

	// RiskAreaExtendedTimeline flags time_to_complete_days above 90
	RiskAreaExtendedTimeline RiskArea = "extended_timeline"
)

const (
	// LowCompletionThreshold is the completion percentage below which a tenant is flagged
	LowCompletionThreshold = 50.0

	// LowMaturityThreshold is the average maturity below which a tenant is flagged
	LowMaturityThreshold = 2.5

	// ExtendedTimelineThresholdDays is the completion time above which a tenant is flagged
	ExtendedTimelineThresholdDays = 90.0
)

// ================================================================================
// Event Constants
// ================================================================================

// EventType represents analytics lifecycle events published to the event bus.
type EventType string

const (
	// EventTypeSnapshotAppended is published after a new analytics snapshot is persisted
	EventTypeSnapshotAppended EventType = "snapshot_appended"

	// EventTypeAnalysisCompleted is published after a successful analysis run
	EventTypeAnalysisCompleted EventType = "analysis_completed"
)

// ================================================================================
// Cache TTL Constants
// ================================================================================

const (
	// TenantSettingsCacheTTL is the cache lifetime for raw tenant settings (30 minutes)
	TenantSettingsCacheTTL = 30 * time.Minute

	// BenchmarkCacheTTL is the cache lifetime for industry benchmark tables (4 hours)
	BenchmarkCacheTTL = 4 * time.Hour

	// BenchmarkLocalCacheTTL is the L1 (in-memory) lifetime for benchmark tables (1 hour)
	BenchmarkLocalCacheTTL = 1 * time.Hour
)

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode identifies a structured application error category.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates a malformed or incomplete request
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeUnknownAnalysisType indicates an unrecognized analysis selector
	ErrCodeUnknownAnalysisType ErrorCode = "unknown_analysis_type"

	// ErrCodeUnauthorized indicates a missing or invalid credential
	ErrCodeUnauthorized ErrorCode = "unauthorized"

	// ErrCodeForbidden indicates the caller may not access the tenant
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeRateLimited indicates the caller exceeded its request budget
	ErrCodeRateLimited ErrorCode = "rate_limited"

	// ErrCodeNotFound indicates a missing resource
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeUpstreamData indicates a data-store fetch failure
	ErrCodeUpstreamData ErrorCode = "upstream_data_fault"

	// ErrCodeInternal indicates an unexpected server condition
	ErrCodeInternal ErrorCode = "internal_error"

	// ErrCodeServiceUnavailable indicates a temporarily unavailable dependency
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// ================================================================================
// Logging Constants
// ================================================================================

// LogLevel represents the severity level of log messages.
type LogLevel string

const (
	// LogLevelDebug is the most verbose logging level
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo is the standard informational logging level
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn indicates potential issues
	LogLevelWarn LogLevel = "warn"

	// LogLevelError indicates errors that need attention
	LogLevelError LogLevel = "error"

	// LogLevelFatal indicates critical errors that cause service termination
	LogLevelFatal LogLevel = "fatal"
)

// ================================================================================
// Context Key Constants
// ================================================================================

// ContextKey represents keys used in context.Context.
type ContextKey string

const (
	// ContextKeyRequestID is the key for request ID in context
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyTraceID is the key for distributed trace ID in context
	ContextKeyTraceID ContextKey = "trace_id"

	// ContextKeyTenantID is the key for tenant ID in context
	ContextKeyTenantID ContextKey = "tenant_id"

	// ContextKeyLogger is the key for a request-scoped logger in context
	ContextKeyLogger ContextKey = "logger"
)

// ================================================================================
// Service Identity Constants
// ================================================================================

const (
	// ServiceName identifies the service in traces, metrics and events
	ServiceName = "praxis-analytics"

	// MetricsNamespace prefixes every Prometheus metric the service exposes
	MetricsNamespace = "praxis"
)
