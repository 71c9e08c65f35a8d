package service

import (
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/utils"
)

// TrendResult classifies the movement of an ordered numeric series.
type TrendResult struct {
	Direction      constants.TrendDirection `json:"direction"`
	PercentChange  float64                  `json:"percent_change"`
	FirstHalfMean  float64                  `json:"first_half_mean"`
	SecondHalfMean float64                  `json:"second_half_mean"`
	Confidence     float64                  `json:"confidence"`
	Variability    float64                  `json:"variability"`
	DataPoints     int                      `json:"data_points"`
}

// InsufficientData is the structured payload returned when an analysis has
// fewer data points than its minimum. It is a normal, expected outcome that
// callers branch on rather than an error.
type InsufficientData struct {
	Error             string `json:"error"`
	MinimumRequired   int    `json:"minimum_required"`
	CurrentDataPoints int    `json:"current_data_points"`
}

// NewInsufficientData builds the payload for a series below its minimum.
func NewInsufficientData(minimum, current int) *InsufficientData {
	return &InsufficientData{
		Error:             "insufficient_data",
		MinimumRequired:   minimum,
		CurrentDataPoints: current,
	}
}

// AnalyzeTrend computes the directional trend of an ordered series by
// comparing the mean of its first half against the mean of its second half
// (midpoint by integer floor division). Movement beyond +-5% classifies as
// improving/declining; anything inside the band is stable.
func AnalyzeTrend(series []float64) TrendResult {
	n := len(series)
	if n < constants.TrendMinDataPoints {
		return TrendResult{
			Direction:  constants.TrendInsufficientData,
			DataPoints: n,
		}
	}

	mid := n / 2
	firstMean := utils.Mean(series[:mid])
	secondMean := utils.Mean(series[mid:])

	var change float64
	switch {
	case firstMean != 0:
		change = (secondMean - firstMean) / firstMean * 100
	case secondMean > 0:
		// Growth from a zero baseline has no finite percentage; report it as
		// a full positive swing rather than dividing by zero.
		change = 100
	}

	direction := constants.TrendStable
	if change > constants.TrendChangeThresholdPct {
		direction = constants.TrendImproving
	} else if change < -constants.TrendChangeThresholdPct {
		direction = constants.TrendDeclining
	}

	variability := utils.PopulationStdDev(series)

	return TrendResult{
		Direction:      direction,
		PercentChange:  utils.Round2(change),
		FirstHalfMean:  utils.Round2(firstMean),
		SecondHalfMean: utils.Round2(secondMean),
		Confidence:     trendConfidence(n, variability),
		Variability:    utils.Round2(variability),
		DataPoints:     n,
	}
}

// trendConfidence scores how much to trust a trend: up to 70 points for
// series length (10 per point) plus up to 30 for low variability, capped
// at 95.
func trendConfidence(n int, variability float64) float64 {
	lengthScore := float64(n) * 10
	if lengthScore > 70 {
		lengthScore = 70
	}

	stabilityScore := 30 - variability
	if stabilityScore < 0 {
		stabilityScore = 0
	}

	confidence := lengthScore + stabilityScore
	if confidence > constants.TrendConfidenceCap {
		confidence = constants.TrendConfidenceCap
	}
	return utils.Round2(confidence)
}
