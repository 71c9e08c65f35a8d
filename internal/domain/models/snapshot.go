package models

import "time"

// AnalyticsSnapshot is one persisted time-series point of a tenant's
// analytics. Snapshots are append-only: they are written whenever analytics
// are recomputed and are never mutated or recomputed retroactively, which is
// what makes concurrent reads for the same tenant safe without locks.
type AnalyticsSnapshot struct {
	ID           string `json:"id" gorm:"column:id;primaryKey"`
	TenantID     string `json:"tenant_id" gorm:"column:tenant_id;index:idx_snapshots_tenant_time"`
	AssessmentID string `json:"assessment_id,omitempty" gorm:"column:assessment_id"`

	CalculatedAt time.Time `json:"calculated_at" gorm:"column:calculated_at;index:idx_snapshots_tenant_time"`

	// CompletionPercentage is in [0,100].
	CompletionPercentage float64 `json:"completion_percentage" gorm:"column:completion_percentage"`

	// AvgMaturityScore is in [0,5].
	AvgMaturityScore float64 `json:"avg_maturity_score" gorm:"column:avg_maturity_score"`

	// ComplianceScore is in [0,100].
	ComplianceScore float64 `json:"compliance_score" gorm:"column:compliance_score"`

	// TimeToCompleteDays is >= 0.
	TimeToCompleteDays float64 `json:"time_to_complete_days" gorm:"column:time_to_complete_days"`
}

// TableName maps the model to its table.
func (AnalyticsSnapshot) TableName() string {
	return "analytics_snapshots"
}
