package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 25.0, Mean([]float64{10, 20, 30, 40}))
	assert.Equal(t, 50.0, Mean([]float64{50}))
}

func TestPopulationStdDev(t *testing.T) {
	assert.Equal(t, 0.0, PopulationStdDev(nil))
	assert.Equal(t, 0.0, PopulationStdDev([]float64{5, 5, 5}))
	// Known population stddev of {2,4,4,4,5,5,7,9} is exactly 2.
	assert.InDelta(t, 2.0, PopulationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 66.7, Round1(200.0/3.0))
}
