// Package utils provides small shared helpers for the Praxis GRC analytics service.
package utils

import "math"

// Mean returns the arithmetic mean of the series, or 0 for an empty series.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// PopulationStdDev returns the population standard deviation of the series.
// An empty series yields 0.
func PopulationStdDev(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	mean := Mean(series)
	var sumSq float64
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(series)))
}

// Round2 rounds to two decimal places. Metric payloads are reported at this
// precision so equality assertions stay stable across platforms.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
