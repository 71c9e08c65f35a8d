package models

import (
	"time"

	"github.com/praxisgrc/praxis/pkg/constants"
)

// AssessmentRecord is one framework assessment owned by a tenant. It owns an
// ordered set of control responses, preloaded by the repository so analytics
// never issue per-row queries.
type AssessmentRecord struct {
	ID           string                     `json:"id" gorm:"column:id;primaryKey"`
	TenantID     string                     `json:"tenant_id" gorm:"column:tenant_id;index"`
	FrameworkRef string                     `json:"framework_ref" gorm:"column:framework_ref"`
	Status       constants.AssessmentStatus `json:"status" gorm:"column:status"`
	CreatedAt    time.Time                  `json:"created_at" gorm:"column:created_at"`
	DueDate      *time.Time                 `json:"due_date,omitempty" gorm:"column:due_date"`

	Responses []ControlResponse `json:"responses" gorm:"foreignKey:AssessmentID;references:ID"`
}

// TableName maps the model to its table.
func (AssessmentRecord) TableName() string {
	return "assessments"
}

// IsOverdue reports whether the assessment passed its due date without being
// completed. Assessments without a due date are never overdue.
func (a *AssessmentRecord) IsOverdue(now time.Time) bool {
	return a.DueDate != nil && a.DueDate.Before(now) && a.Status != constants.AssessmentStatusCompleted
}

// ControlResponse is a tenant's answer for one control within an assessment.
type ControlResponse struct {
	ID           string                   `json:"id" gorm:"column:id;primaryKey"`
	AssessmentID string                   `json:"assessment_id" gorm:"column:assessment_id;index"`
	ControlID    string                   `json:"control_id" gorm:"column:control_id"`
	Domain       string                   `json:"domain" gorm:"column:domain"`
	Status       constants.ResponseStatus `json:"status" gorm:"column:status"`

	// MaturityLevel is the 1-5 ordinal score. Nil means unanswered and is
	// treated as 0 when averaging, matching the product's reporting rules.
	MaturityLevel *int `json:"maturity_level,omitempty" gorm:"column:maturity_level"`

	AnsweredAt *time.Time `json:"answered_at,omitempty" gorm:"column:answered_at"`
}

// TableName maps the model to its table.
func (ControlResponse) TableName() string {
	return "control_responses"
}

// MaturityOrZero returns the maturity level, treating missing as 0.
func (r *ControlResponse) MaturityOrZero() float64 {
	if r.MaturityLevel == nil {
		return 0
	}
	return float64(*r.MaturityLevel)
}

// IsCompleted reports whether the control has been answered.
func (r *ControlResponse) IsCompleted() bool {
	return r.Status == constants.ResponseStatusCompleted
}
