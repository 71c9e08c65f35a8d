// Package service contains the domain services of the analytics core. All
// components here are stateless: pure functions of the records fetched by the
// application layer, safe to run concurrently for any mix of tenants.
package service

import (
	"context"
	"encoding/json"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// DefaultMatrixConfig returns the built-in 5x5 risk matrix used whenever a
// tenant has no usable risk_matrix configuration.
func DefaultMatrixConfig() *models.RiskMatrixConfig {
	return &models.RiskMatrixConfig{
		Type: constants.Matrix5x5,
		Levels: models.RiskLevelBuckets{
			Low:      []int{1, 2, 3, 5, 6},
			Medium:   []int{4, 7, 8, 9, 10, 11},
			High:     []int{12, 13, 14, 15, 16, 17, 18},
			Critical: []int{19, 20, 21, 22, 23, 24, 25},
		},
		ImpactLabels:     []string{"Insignificante", "Menor", "Moderado", "Maior", "Catastrófico"},
		LikelihoodLabels: []string{"Raro", "Improvável", "Possível", "Provável", "Quase Certo"},
		UsedDefaults:     true,
	}
}

// MatrixResolver normalizes a tenant's raw settings document into a validated
// RiskMatrixConfig. It never fails: malformed or missing configuration
// degrades to the built-in defaults, and that branch is logged so operators
// and tests can observe it.
type MatrixResolver struct {
	log logger.Logger
}

// NewMatrixResolver creates a resolver.
func NewMatrixResolver(log logger.Logger) *MatrixResolver {
	return &MatrixResolver{log: log.WithComponent("matrix_resolver")}
}

// Resolve produces the tenant's resolved risk matrix from its raw settings
// JSON. The returned config always has a resolved Type.
func (r *MatrixResolver) Resolve(ctx context.Context, tenantID string, settings json.RawMessage) *models.RiskMatrixConfig {
	if len(settings) == 0 {
		r.logDefaulting(ctx, tenantID, "settings document missing")
		return DefaultMatrixConfig()
	}

	var parsed models.TenantSettings
	if err := json.Unmarshal(settings, &parsed); err != nil {
		r.logDefaulting(ctx, tenantID, "settings document malformed")
		return DefaultMatrixConfig()
	}
	if parsed.RiskMatrix == nil {
		r.logDefaulting(ctx, tenantID, "risk_matrix block missing")
		return DefaultMatrixConfig()
	}

	raw := parsed.RiskMatrix
	cfg := &models.RiskMatrixConfig{
		Type:             resolveType(raw),
		ImpactLabels:     raw.ImpactLabels,
		LikelihoodLabels: raw.LikelihoodLabels,
	}
	if raw.RiskLevels != nil {
		cfg.Levels = models.RiskLevelBuckets{
			Low:      raw.RiskLevels["low"],
			Medium:   raw.RiskLevels["medium"],
			High:     raw.RiskLevels["high"],
			Critical: raw.RiskLevels["critical"],
		}
	}

	// A 3x3 matrix has no critical band regardless of what the tenant stored.
	if cfg.Type == constants.Matrix3x3 {
		cfg.Levels.Critical = nil
	}

	return cfg
}

// resolveType returns the explicit matrix type, inferring it from the number
// of impact labels when absent: 3 labels → 3x3, 4 → 4x4, anything else → 5x5.
func resolveType(raw *models.RawRiskMatrix) constants.MatrixType {
	switch raw.Type {
	case string(constants.Matrix3x3):
		return constants.Matrix3x3
	case string(constants.Matrix4x4):
		return constants.Matrix4x4
	case string(constants.Matrix5x5):
		return constants.Matrix5x5
	}

	switch len(raw.ImpactLabels) {
	case 3:
		return constants.Matrix3x3
	case 4:
		return constants.Matrix4x4
	default:
		return constants.Matrix5x5
	}
}

func (r *MatrixResolver) logDefaulting(ctx context.Context, tenantID, reason string) {
	r.log.Warn(ctx, "using default risk matrix", logger.Fields{
		"tenant_id": tenantID,
		"reason":    reason,
	})
}
