// Package dto defines the request and response payloads exchanged at the
// service boundary. DTOs are deliberately decoupled from the domain models so
// the wire contract can evolve without touching the analytics core.
package dto

import (
	"time"
)

// TimeRangeDTO optionally bounds an analysis to a time window. Nil bounds are
// open.
type TimeRangeDTO struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// BenchmarkCriteria narrows a benchmarking analysis. When Industry is empty
// the tenant's own configured industry is used.
type BenchmarkCriteria struct {
	Industry string `json:"industry,omitempty"`
}

// AnalysisRequest is the body of POST /api/v1/analytics/run. The analysis_type
// binding tag is a custom validator rule so an unknown selector surfaces with
// its own error code instead of a generic validation failure.
type AnalysisRequest struct {
	AnalysisType      string             `json:"analysis_type" binding:"required,analysis_type"`
	TenantID          string             `json:"tenant_id" binding:"required"`
	TimeRange         *TimeRangeDTO      `json:"time_range,omitempty"`
	BenchmarkCriteria *BenchmarkCriteria `json:"benchmark_criteria,omitempty"`
}

// AnalysisResponse is the uniform success envelope of the analysis endpoint.
// Result carries the per-type payload, including the insufficient-data
// condition, which is a successful outcome.
type AnalysisResponse struct {
	Success      bool        `json:"success"`
	AnalysisType string      `json:"analysis_type"`
	TenantID     string      `json:"tenant_id"`
	GeneratedAt  time.Time   `json:"generated_at"`
	Result       interface{} `json:"result"`
}

// ClassifyRiskRequest is the body of POST /api/v1/risk/classify. The static
// max bound covers the largest matrix; the per-tenant dimension check happens
// after the tenant's matrix is resolved.
type ClassifyRiskRequest struct {
	TenantID    string `json:"tenant_id" binding:"required"`
	Probability int    `json:"probability" binding:"required,min=1,max=5"`
	Impact      int    `json:"impact" binding:"required,min=1,max=5"`
}

// ClassifyRiskResponse is the classification result payload.
type ClassifyRiskResponse struct {
	TenantID     string `json:"tenant_id"`
	Score        int    `json:"score"`
	Label        string `json:"label"`
	MatrixType   string `json:"matrix_type"`
	UsedDefaults bool   `json:"used_defaults"`
}
