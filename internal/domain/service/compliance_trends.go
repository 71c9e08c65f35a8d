package service

import (
	"context"
	"time"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/constants"
)

// ComplianceTrendReport is the compliance-trends analysis payload.
type ComplianceTrendReport struct {
	CompletionTrend TrendResult `json:"completion_trend"`
	MaturityTrend   TrendResult `json:"maturity_trend"`
	ComplianceTrend TrendResult `json:"compliance_trend"`

	Insights []string `json:"insights"`

	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	DataPoints  int       `json:"data_points"`
}

// Insight sentences, fixed per metric and direction. The product renders
// these verbatim, so wording changes are product decisions.
var trendInsights = map[string]map[constants.TrendDirection]string{
	"completion": {
		constants.TrendImproving: "A taxa de conclusão das avaliações está em tendência de melhora.",
		constants.TrendDeclining: "A taxa de conclusão das avaliações está em queda; revise o plano de ação.",
		constants.TrendStable:    "A taxa de conclusão das avaliações permanece estável.",
	},
	"maturity": {
		constants.TrendImproving: "A maturidade média dos controles está evoluindo.",
		constants.TrendDeclining: "A maturidade média dos controles está regredindo.",
		constants.TrendStable:    "A maturidade média dos controles permanece estável.",
	},
	"compliance": {
		constants.TrendImproving: "O índice de conformidade está em tendência de alta.",
		constants.TrendDeclining: "O índice de conformidade está em queda.",
		constants.TrendStable:    "O índice de conformidade permanece estável.",
	},
}

// AnalyzeComplianceTrends runs the trend analyzer independently over the
// completion, maturity and compliance series of a tenant's snapshot history
// and renders the fixed insight sentence for each direction. Fewer than two
// snapshots is a normal outcome reported through InsufficientData.
func AnalyzeComplianceTrends(ctx context.Context, snapshots []models.AnalyticsSnapshot) (*ComplianceTrendReport, *InsufficientData, error) {
	if len(snapshots) < constants.TrendMinDataPoints {
		return nil, NewInsufficientData(constants.TrendMinDataPoints, len(snapshots)), nil
	}

	completionSeries := make([]float64, 0, len(snapshots))
	maturitySeries := make([]float64, 0, len(snapshots))
	complianceSeries := make([]float64, 0, len(snapshots))
	for i := range snapshots {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		completionSeries = append(completionSeries, snapshots[i].CompletionPercentage)
		maturitySeries = append(maturitySeries, snapshots[i].AvgMaturityScore)
		complianceSeries = append(complianceSeries, snapshots[i].ComplianceScore)
	}

	report := &ComplianceTrendReport{
		CompletionTrend: AnalyzeTrend(completionSeries),
		MaturityTrend:   AnalyzeTrend(maturitySeries),
		ComplianceTrend: AnalyzeTrend(complianceSeries),
		PeriodStart:     snapshots[0].CalculatedAt,
		PeriodEnd:       snapshots[len(snapshots)-1].CalculatedAt,
		DataPoints:      len(snapshots),
	}

	report.Insights = []string{
		trendInsights["completion"][report.CompletionTrend.Direction],
		trendInsights["maturity"][report.MaturityTrend.Direction],
		trendInsights["compliance"][report.ComplianceTrend.Direction],
	}

	return report, nil, nil
}
