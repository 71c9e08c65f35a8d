package service

import (
	"context"
	"time"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/utils"
)

// DomainProgress is the per-domain response counts of one assessment.
type DomainProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// AssessmentProgress holds the completion and maturity metrics of one
// assessment.
type AssessmentProgress struct {
	AssessmentID         string                    `json:"assessment_id"`
	FrameworkRef         string                    `json:"framework_ref"`
	Status               string                    `json:"status"`
	TotalControls        int                       `json:"total_controls"`
	CompletedControls    int                       `json:"completed_controls"`
	CompletionPercentage float64                   `json:"completion_percentage"`
	AvgMaturity          float64                   `json:"avg_maturity"`
	IsOverdue            bool                      `json:"is_overdue"`
	DomainBreakdown      map[string]DomainProgress `json:"domain_breakdown"`
}

// TenantProgressSummary aggregates per-assessment metrics for a tenant.
type TenantProgressSummary struct {
	TotalAssessments int `json:"total_assessments"`

	// OverallCompletionRate is the arithmetic mean of each assessment's own
	// completion percentage, NOT a response-count-weighted global average.
	// Small assessments deliberately weigh the same as large ones in the
	// tenant's headline number.
	OverallCompletionRate float64 `json:"overall_completion_rate"`

	AvgMaturityScore   float64              `json:"avg_maturity_score"`
	OverdueAssessments int                  `json:"overdue_assessments"`
	Assessments        []AssessmentProgress `json:"assessments"`
}

// AggregateAssessment computes the progress metrics of a single assessment.
func AggregateAssessment(a *models.AssessmentRecord, now time.Time) AssessmentProgress {
	progress := AssessmentProgress{
		AssessmentID:    a.ID,
		FrameworkRef:    a.FrameworkRef,
		Status:          string(a.Status),
		TotalControls:   len(a.Responses),
		IsOverdue:       a.IsOverdue(now),
		DomainBreakdown: make(map[string]DomainProgress),
	}

	var maturitySum float64
	for i := range a.Responses {
		resp := &a.Responses[i]
		maturitySum += resp.MaturityOrZero()

		d := progress.DomainBreakdown[resp.Domain]
		d.Total++
		if resp.IsCompleted() {
			d.Completed++
			progress.CompletedControls++
		}
		progress.DomainBreakdown[resp.Domain] = d
	}

	if progress.TotalControls > 0 {
		progress.CompletionPercentage = utils.Round2(
			100 * float64(progress.CompletedControls) / float64(progress.TotalControls))
		progress.AvgMaturity = utils.Round2(maturitySum / float64(progress.TotalControls))
	}

	return progress
}

// AggregateTenantProgress computes the tenant-wide progress summary. The
// context is checked before each assessment so a cancelled request stops
// consuming resources mid-aggregation.
func AggregateTenantProgress(ctx context.Context, assessments []models.AssessmentRecord, now time.Time) (*TenantProgressSummary, error) {
	summary := &TenantProgressSummary{
		TotalAssessments: len(assessments),
		Assessments:      make([]AssessmentProgress, 0, len(assessments)),
	}

	var completionSum, maturitySum float64
	for i := range assessments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := AggregateAssessment(&assessments[i], now)
		summary.Assessments = append(summary.Assessments, p)

		completionSum += p.CompletionPercentage
		maturitySum += p.AvgMaturity
		if p.IsOverdue {
			summary.OverdueAssessments++
		}
	}

	if summary.TotalAssessments > 0 {
		n := float64(summary.TotalAssessments)
		summary.OverallCompletionRate = utils.Round2(completionSum / n)
		summary.AvgMaturityScore = utils.Round2(maturitySum / n)
	}

	return summary, nil
}
