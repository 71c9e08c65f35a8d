package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/domain/service"
	"github.com/praxisgrc/praxis/pkg/constants"
)

func TestClassifyRisk_Default5x5(t *testing.T) {
	cfg := service.DefaultMatrixConfig()

	tests := []struct {
		probability int
		impact      int
		wantScore   int
		wantLabel   constants.RiskLabel
	}{
		{1, 1, 1, constants.RiskLabelLow},
		{1, 4, 4, constants.RiskLabelMedium},
		{3, 4, 12, constants.RiskLabelHigh},
		{4, 5, 20, constants.RiskLabelVeryHigh},
		{5, 5, 25, constants.RiskLabelVeryHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("p%d_i%d", tt.probability, tt.impact), func(t *testing.T) {
			got := service.ClassifyRisk(cfg, tt.probability, tt.impact)

			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, constants.Matrix5x5, got.MatrixType)
		})
	}
}

// Every valid pair of the default matrix must yield a defined label: the
// lookup never returns an empty classification.
func TestClassifyRisk_AllPairsAreLabeled(t *testing.T) {
	cfg := service.DefaultMatrixConfig()

	for p := 1; p <= 5; p++ {
		for i := 1; i <= 5; i++ {
			got := service.ClassifyRisk(cfg, p, i)
			assert.NotEmpty(t, got.Label, "missing label for p=%d i=%d", p, i)
		}
	}
}

func TestClassifyRisk_BucketGapFallsThroughToLowestLabel(t *testing.T) {
	// A sparse configuration that covers nothing around score 6: the gap
	// falls through to the matrix's lowest label, indistinguishable from a
	// legitimately low score.
	cfg := &models.RiskMatrixConfig{
		Type: constants.Matrix5x5,
		Levels: models.RiskLevelBuckets{
			Low:  []int{1},
			High: []int{20, 25},
		},
	}

	got := service.ClassifyRisk(cfg, 2, 3)

	assert.Equal(t, 6, got.Score)
	assert.Equal(t, constants.RiskLabelVeryLow, got.Label)
}

func TestClassifyRisk_4x4CriticalAndFallback(t *testing.T) {
	cfg := &models.RiskMatrixConfig{
		Type: constants.Matrix4x4,
		Levels: models.RiskLevelBuckets{
			Low:      []int{1, 2},
			Medium:   []int{3, 4, 6},
			High:     []int{8, 9},
			Critical: []int{12, 16},
		},
	}

	critical := service.ClassifyRisk(cfg, 4, 4)
	assert.Equal(t, constants.RiskLabelCritical, critical.Label)

	// On a 4x4 matrix an uncovered score falls back to "Baixo", not
	// "Muito Baixo".
	gap := service.ClassifyRisk(&models.RiskMatrixConfig{
		Type:   constants.Matrix4x4,
		Levels: models.RiskLevelBuckets{High: []int{12}},
	}, 2, 3)
	assert.Equal(t, constants.RiskLabelLow, gap.Label)
}

func TestClassifyRisk_3x3NeverCritical(t *testing.T) {
	cfg := &models.RiskMatrixConfig{
		Type: constants.Matrix3x3,
		Levels: models.RiskLevelBuckets{
			Low:    []int{1, 2},
			Medium: []int{3, 4},
			High:   []int{6, 9},
		},
	}

	for p := 1; p <= 3; p++ {
		for i := 1; i <= 3; i++ {
			got := service.ClassifyRisk(cfg, p, i)
			assert.NotEqual(t, constants.RiskLabelCritical, got.Label)
			assert.NotEqual(t, constants.RiskLabelVeryHigh, got.Label)
		}
	}
}
