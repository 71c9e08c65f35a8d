package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/service"
)

func TestCompareBenchmarks_PercentileBands(t *testing.T) {
	cases := []struct {
		name       string
		tenant     float64
		industry   float64
		percentile int
	}{
		{"well above", 100, 80, 90},
		{"above", 90, 80, 75},
		{"at average", 80, 80, 60},
		{"slightly below", 74, 80, 40},
		{"below", 66, 80, 25},
		{"far below", 50, 80, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := service.CompareBenchmarks(
				map[string]float64{models.MetricCompletionRate: tc.tenant},
				models.BenchmarkTable{models.MetricCompletionRate: tc.industry},
				"financial_services",
			)

			require.Len(t, report.Comparisons, 1)
			assert.Equal(t, tc.percentile, report.Comparisons[0].Percentile)
		})
	}
}

func TestCompareBenchmarks_SkipsMetricsWithoutBaseline(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{
			models.MetricCompletionRate: 75,
			"unknown_metric":            42,
		},
		models.BenchmarkTable{models.MetricCompletionRate: 70},
		"healthcare",
	)

	require.Len(t, report.Comparisons, 1)
	assert.Equal(t, models.MetricCompletionRate, report.Comparisons[0].Metric)
}

func TestCompareBenchmarks_UnknownIndustryYieldsEmptyReport(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{models.MetricCompletionRate: 75},
		models.BenchmarkTable{},
		"cottage_cheese",
	)

	assert.Empty(t, report.Comparisons)
	assert.Empty(t, report.Summary.MetricsAboveAverage)
	assert.Empty(t, report.Summary.MetricsInTopQuartile)
	assert.Empty(t, report.Summary.MetricsNeedImprovement)
}

func TestCompareBenchmarks_ZeroBaselineSkipped(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{models.MetricCompletionRate: 75},
		models.BenchmarkTable{models.MetricCompletionRate: 0},
		"healthcare",
	)

	assert.Empty(t, report.Comparisons)
}

// time_to_complete_days is a lower-is-better metric: finishing in 40 days
// against a 60-day baseline is a 1.5 ratio, i.e. the 90th band.
func TestCompareBenchmarks_LowerIsBetterInversion(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{models.MetricTimeToCompleteDay: 40},
		models.BenchmarkTable{models.MetricTimeToCompleteDay: 60},
		"technology",
	)

	require.Len(t, report.Comparisons, 1)
	c := report.Comparisons[0]
	assert.Equal(t, 90, c.Percentile)
	assert.Equal(t, 48.0, c.TopQuartile)
}

func TestCompareBenchmarks_ZeroTimeSkipped(t *testing.T) {
	// time_to_complete_days is 0 when the tenant has no completed assessments.
	// That must not be scored as beating the baseline.
	report := service.CompareBenchmarks(
		map[string]float64{
			models.MetricTimeToCompleteDay: 0,
			models.MetricCompletionRate:    80,
		},
		models.BenchmarkTable{
			models.MetricTimeToCompleteDay: 60,
			models.MetricCompletionRate:    80,
		},
		"technology",
	)

	require.Len(t, report.Comparisons, 1)
	assert.Equal(t, models.MetricCompletionRate, report.Comparisons[0].Metric)
	assert.NotContains(t, report.Summary.MetricsInTopQuartile, models.MetricTimeToCompleteDay)
}

func TestCompareBenchmarks_TopQuartileTargets(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{
			models.MetricCompletionRate:   80,
			models.MetricAvgMaturityScore: 3.0,
		},
		models.BenchmarkTable{
			models.MetricCompletionRate:   80,
			models.MetricAvgMaturityScore: 3.0,
		},
		"healthcare",
	)

	require.Len(t, report.Comparisons, 2)
	byMetric := map[string]service.BenchmarkComparison{}
	for _, c := range report.Comparisons {
		byMetric[c.Metric] = c
	}

	assert.Equal(t, 3.6, byMetric[models.MetricAvgMaturityScore].TopQuartile)
	assert.Equal(t, 92.0, byMetric[models.MetricCompletionRate].TopQuartile)
}

func TestCompareBenchmarks_MaturityTopQuartileCappedAtFive(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{models.MetricAvgMaturityScore: 4.8},
		models.BenchmarkTable{models.MetricAvgMaturityScore: 4.5},
		"technology",
	)

	require.Len(t, report.Comparisons, 1)
	assert.Equal(t, 5.0, report.Comparisons[0].TopQuartile)
}

func TestCompareBenchmarks_SummaryBuckets(t *testing.T) {
	report := service.CompareBenchmarks(
		map[string]float64{
			models.MetricCompletionRate:   96,  // ratio 1.2 -> above avg, top quartile
			models.MetricAvgMaturityScore: 3.0, // ratio 1.0 -> above avg only
			models.MetricComplianceScore:  60,  // ratio 0.75 -> needs improvement
		},
		models.BenchmarkTable{
			models.MetricCompletionRate:   80,
			models.MetricAvgMaturityScore: 3.0,
			models.MetricComplianceScore:  80,
		},
		"financial_services",
	)

	assert.ElementsMatch(t, []string{models.MetricCompletionRate, models.MetricAvgMaturityScore}, report.Summary.MetricsAboveAverage)
	assert.ElementsMatch(t, []string{models.MetricCompletionRate}, report.Summary.MetricsInTopQuartile)
	assert.ElementsMatch(t, []string{models.MetricComplianceScore}, report.Summary.MetricsNeedImprovement)
}

func TestCompareBenchmarks_DeterministicOrder(t *testing.T) {
	table := models.BenchmarkTable{
		models.MetricCompletionRate:   80,
		models.MetricAvgMaturityScore: 3.0,
		models.MetricComplianceScore:  75,
	}
	tenant := map[string]float64{
		models.MetricCompletionRate:   70,
		models.MetricAvgMaturityScore: 3.2,
		models.MetricComplianceScore:  75,
	}

	report := service.CompareBenchmarks(tenant, table, "healthcare")

	require.Len(t, report.Comparisons, 3)
	assert.Equal(t, models.MetricAvgMaturityScore, report.Comparisons[0].Metric)
	assert.Equal(t, models.MetricComplianceScore, report.Comparisons[1].Metric)
	assert.Equal(t, models.MetricCompletionRate, report.Comparisons[2].Metric)
}
