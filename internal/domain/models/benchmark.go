package models

import "time"

// Benchmark metric identifiers. These are the metrics the benchmark engine
// knows how to compare; each carries its own scale and direction semantics.
const (
	MetricCompletionRate    = "completion_rate"       // 0-100, higher is better
	MetricAvgMaturityScore  = "avg_maturity_score"    // 0-5, higher is better
	MetricComplianceScore   = "compliance_score"      // 0-100, higher is better
	MetricTimeToCompleteDay = "time_to_complete_days" // days, lower is better
)

// BenchmarkReference is one per-industry baseline row.
type BenchmarkReference struct {
	ID           string    `json:"id" gorm:"column:id;primaryKey"`
	Industry     string    `json:"industry" gorm:"column:industry;uniqueIndex:idx_benchmark_industry_metric"`
	Metric       string    `json:"metric" gorm:"column:metric;uniqueIndex:idx_benchmark_industry_metric"`
	AverageValue float64   `json:"average_value" gorm:"column:average_value"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName maps the model to its table.
func (BenchmarkReference) TableName() string {
	return "benchmark_references"
}

// BenchmarkTable is an industry's baseline as metric → average value.
type BenchmarkTable map[string]float64

// LowerIsBetter reports whether a smaller tenant value beats the baseline for
// the given metric. Time-based metrics invert the comparison ratio.
func LowerIsBetter(metric string) bool {
	return metric == MetricTimeToCompleteDay
}
