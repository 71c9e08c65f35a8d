package service

import (
	"sort"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/utils"
)

// BenchmarkComparison compares one tenant metric against its industry
// baseline.
type BenchmarkComparison struct {
	Metric      string  `json:"metric"`
	TenantValue float64 `json:"tenant_value"`
	IndustryAvg float64 `json:"industry_avg"`
	TopQuartile float64 `json:"top_quartile"`
	Percentile  int     `json:"percentile"`
}

// BenchmarkSummary groups metrics by how the tenant stands against the
// baseline.
type BenchmarkSummary struct {
	MetricsAboveAverage    []string `json:"metrics_above_average"`
	MetricsInTopQuartile   []string `json:"metrics_in_top_quartile"`
	MetricsNeedImprovement []string `json:"metrics_need_improvement"`
}

// BenchmarkReport is the benchmarking analysis payload.
type BenchmarkReport struct {
	Industry    string                `json:"industry"`
	Comparisons []BenchmarkComparison `json:"comparisons"`
	Summary     BenchmarkSummary      `json:"summary"`
}

// CompareBenchmarks scores each tenant metric against the industry table.
// Metrics without a baseline row are skipped; an unknown industry therefore
// produces an empty report rather than an error.
func CompareBenchmarks(tenantMetrics map[string]float64, table models.BenchmarkTable, industry string) *BenchmarkReport {
	report := &BenchmarkReport{
		Industry:    industry,
		Comparisons: make([]BenchmarkComparison, 0, len(tenantMetrics)),
		Summary: BenchmarkSummary{
			MetricsAboveAverage:    []string{},
			MetricsInTopQuartile:   []string{},
			MetricsNeedImprovement: []string{},
		},
	}

	// Deterministic metric order keeps payloads and tests stable.
	metrics := make([]string, 0, len(tenantMetrics))
	for m := range tenantMetrics {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)

	for _, metric := range metrics {
		industryAvg, ok := table[metric]
		if !ok || industryAvg == 0 {
			continue
		}
		tenantValue := tenantMetrics[metric]

		ratio := tenantValue / industryAvg
		if models.LowerIsBetter(metric) {
			// A zero elapsed time means no assessment has completed yet, not
			// instant completion, so there is nothing to compare.
			if tenantValue == 0 {
				continue
			}
			ratio = industryAvg / tenantValue
		}

		percentile := percentileBand(ratio)
		comparison := BenchmarkComparison{
			Metric:      metric,
			TenantValue: utils.Round2(tenantValue),
			IndustryAvg: utils.Round2(industryAvg),
			TopQuartile: utils.Round2(topQuartileTarget(metric, industryAvg)),
			Percentile:  percentile,
		}
		report.Comparisons = append(report.Comparisons, comparison)

		if ratio >= 1.0 {
			report.Summary.MetricsAboveAverage = append(report.Summary.MetricsAboveAverage, metric)
		}
		if percentile >= 75 {
			report.Summary.MetricsInTopQuartile = append(report.Summary.MetricsInTopQuartile, metric)
		}
		if percentile < 50 {
			report.Summary.MetricsNeedImprovement = append(report.Summary.MetricsNeedImprovement, metric)
		}
	}

	return report
}

// percentileBand discretizes a tenant/industry ratio into the product's
// percentile bands.
func percentileBand(ratio float64) int {
	switch {
	case ratio >= 1.2:
		return 90
	case ratio >= 1.1:
		return 75
	case ratio >= 1.0:
		return 60
	case ratio >= 0.9:
		return 40
	case ratio >= 0.8:
		return 25
	default:
		return 10
	}
}

// topQuartileTarget estimates the industry's top-quartile value for a metric:
// +15% for 0-100 rate metrics, +20% capped at 5.0 for the 0-5 maturity
// scale, and -20% for time-based metrics where lower is better.
func topQuartileTarget(metric string, industryAvg float64) float64 {
	switch metric {
	case models.MetricAvgMaturityScore:
		target := industryAvg * 1.2
		if target > 5.0 {
			target = 5.0
		}
		return target
	case models.MetricTimeToCompleteDay:
		return industryAvg * 0.8
	default:
		return industryAvg * 1.15
	}
}
