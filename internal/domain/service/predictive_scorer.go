package service

import (
	"context"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/constants"
)

// CompletionForecast is a coarse placeholder for near-term completion
// forecasting: a fixed confidence label plus the factors that fed it.
//
// TODO: replace with a regression fitted over snapshot history once tenants
// accumulate enough points for the fit to beat this heuristic.
type CompletionForecast struct {
	Outlook             string   `json:"outlook"`
	Confidence          string   `json:"confidence"`
	ContributingFactors []string `json:"contributing_factors"`
}

// PredictiveReport is the predictive-scoring analysis payload.
type PredictiveReport struct {
	CompletionRateTrend TrendResult          `json:"completion_rate_trend"`
	MaturityScoreTrend  TrendResult          `json:"maturity_score_trend"`
	RiskAreas           []constants.RiskArea `json:"risk_areas"`
	Forecast            CompletionForecast   `json:"completion_forecast"`
	SnapshotsAnalyzed   int                  `json:"snapshots_analyzed"`
}

// ScorePredictive flags risk areas and forecasts near-term outcomes from a
// tenant's snapshot history. Fewer than three snapshots is a normal outcome
// reported through the InsufficientData payload, never an error.
//
// Trends are computed over the whole history; risk-area flags come from the
// latest snapshot only.
func ScorePredictive(ctx context.Context, snapshots []models.AnalyticsSnapshot) (*PredictiveReport, *InsufficientData, error) {
	if len(snapshots) < constants.PredictiveMinSnapshots {
		return nil, NewInsufficientData(constants.PredictiveMinSnapshots, len(snapshots)), nil
	}

	completionSeries := make([]float64, 0, len(snapshots))
	maturitySeries := make([]float64, 0, len(snapshots))
	for i := range snapshots {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		completionSeries = append(completionSeries, snapshots[i].CompletionPercentage)
		maturitySeries = append(maturitySeries, snapshots[i].AvgMaturityScore)
	}

	completionTrend := AnalyzeTrend(completionSeries)
	maturityTrend := AnalyzeTrend(maturitySeries)
	latest := snapshots[len(snapshots)-1]

	return &PredictiveReport{
		CompletionRateTrend: completionTrend,
		MaturityScoreTrend:  maturityTrend,
		RiskAreas:           flagRiskAreas(&latest),
		Forecast:            buildForecast(completionTrend),
		SnapshotsAnalyzed:   len(snapshots),
	}, nil, nil
}

// flagRiskAreas raises flags from the latest snapshot only: historical lows
// that have already recovered should not keep a tenant flagged.
func flagRiskAreas(latest *models.AnalyticsSnapshot) []constants.RiskArea {
	areas := []constants.RiskArea{}
	if latest.CompletionPercentage < constants.LowCompletionThreshold {
		areas = append(areas, constants.RiskAreaLowCompletion)
	}
	if latest.AvgMaturityScore < constants.LowMaturityThreshold {
		areas = append(areas, constants.RiskAreaLowMaturity)
	}
	if latest.TimeToCompleteDays > constants.ExtendedTimelineThresholdDays {
		areas = append(areas, constants.RiskAreaExtendedTimeline)
	}
	return areas
}

func buildForecast(completionTrend TrendResult) CompletionForecast {
	outlook := "on_track"
	if completionTrend.Direction == constants.TrendDeclining {
		outlook = "at_risk"
	}

	return CompletionForecast{
		Outlook:    outlook,
		Confidence: "medium",
		ContributingFactors: []string{
			"completion_rate_trend",
			"maturity_score_trend",
			"historical_completion_velocity",
		},
	}
}
