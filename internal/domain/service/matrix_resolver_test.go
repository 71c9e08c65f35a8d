package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisgrc/praxis/internal/domain/service"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

func newResolver() *service.MatrixResolver {
	return service.NewMatrixResolver(logger.NewNoopLogger())
}

func TestResolve_MissingSettingsUsesDefaults(t *testing.T) {
	cfg := newResolver().Resolve(context.Background(), "tenant-1", nil)

	require.NotNil(t, cfg)
	assert.True(t, cfg.UsedDefaults)
	assert.Equal(t, constants.Matrix5x5, cfg.Type)
	assert.Equal(t, []int{1, 2, 3, 5, 6}, cfg.Levels.Low)
	assert.Equal(t, []int{4, 7, 8, 9, 10, 11}, cfg.Levels.Medium)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17, 18}, cfg.Levels.High)
	assert.Equal(t, []int{19, 20, 21, 22, 23, 24, 25}, cfg.Levels.Critical)
	assert.Equal(t, []string{"Insignificante", "Menor", "Moderado", "Maior", "Catastrófico"}, cfg.ImpactLabels)
	assert.Equal(t, []string{"Raro", "Improvável", "Possível", "Provável", "Quase Certo"}, cfg.LikelihoodLabels)
}

func TestResolve_MalformedSettingsUsesDefaults(t *testing.T) {
	cfg := newResolver().Resolve(context.Background(), "tenant-1", json.RawMessage(`{not json`))

	assert.True(t, cfg.UsedDefaults)
	assert.Equal(t, constants.Matrix5x5, cfg.Type)
}

func TestResolve_SettingsWithoutRiskMatrixUsesDefaults(t *testing.T) {
	cfg := newResolver().Resolve(context.Background(), "tenant-1", json.RawMessage(`{"industry":"finance"}`))

	assert.True(t, cfg.UsedDefaults)
	assert.Equal(t, constants.Matrix5x5, cfg.Type)
}

func TestResolve_InfersTypeFromImpactLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels int
		want   constants.MatrixType
	}{
		{"three labels", 3, constants.Matrix3x3},
		{"four labels", 4, constants.Matrix4x4},
		{"five labels", 5, constants.Matrix5x5},
		{"no labels", 0, constants.Matrix5x5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := make([]string, tt.labels)
			for i := range labels {
				labels[i] = "label"
			}
			raw, err := json.Marshal(map[string]interface{}{
				"risk_matrix": map[string]interface{}{
					"impact_labels": labels,
					"risk_levels":   map[string][]int{"low": {1, 2}},
				},
			})
			require.NoError(t, err)

			cfg := newResolver().Resolve(context.Background(), "tenant-1", raw)

			assert.Equal(t, tt.want, cfg.Type)
			assert.False(t, cfg.UsedDefaults)
		})
	}
}

func TestResolve_ExplicitTypeWins(t *testing.T) {
	raw := json.RawMessage(`{"risk_matrix":{"type":"4x4","impact_labels":["a","b","c"]}}`)

	cfg := newResolver().Resolve(context.Background(), "tenant-1", raw)

	assert.Equal(t, constants.Matrix4x4, cfg.Type)
}

func TestResolve_StripsCriticalBucketFor3x3(t *testing.T) {
	raw := json.RawMessage(`{"risk_matrix":{"type":"3x3","risk_levels":{"low":[1,2],"medium":[3,4],"high":[6,9],"critical":[9]}}}`)

	cfg := newResolver().Resolve(context.Background(), "tenant-1", raw)

	assert.Equal(t, constants.Matrix3x3, cfg.Type)
	assert.False(t, cfg.HasCriticalBucket())
	assert.Equal(t, []int{6, 9}, cfg.Levels.High)
}
