package models

import (
	"github.com/praxisgrc/praxis/pkg/constants"
)

// RawRiskMatrix is the loosely-typed risk_matrix block as stored inside a
// tenant's settings document. Any field may be missing or malformed; only the
// resolver is allowed to interpret it.
type RawRiskMatrix struct {
	Type             string           `json:"type,omitempty"`
	RiskLevels       map[string][]int `json:"risk_levels,omitempty"`
	ImpactLabels     []string         `json:"impact_labels,omitempty"`
	LikelihoodLabels []string         `json:"likelihood_labels,omitempty"`
}

// TenantSettings is the subset of the tenant settings document this service
// reads. Unknown keys are ignored.
type TenantSettings struct {
	RiskMatrix *RawRiskMatrix `json:"risk_matrix,omitempty"`
	Industry   string         `json:"industry,omitempty"`
}

// RiskLevelBuckets holds the score sets of each qualitative band. Critical is
// nil for matrices without a critical band (always the case for 3x3).
type RiskLevelBuckets struct {
	Low      []int `json:"low"`
	Medium   []int `json:"medium"`
	High     []int `json:"high"`
	Critical []int `json:"critical,omitempty"`
}

// RiskMatrixConfig is the validated, resolved form of a tenant's risk matrix.
// Its Type discriminant is always set; call sites never inspect the raw
// settings document.
type RiskMatrixConfig struct {
	Type             constants.MatrixType `json:"type"`
	Levels           RiskLevelBuckets     `json:"risk_levels"`
	ImpactLabels     []string             `json:"impact_labels"`
	LikelihoodLabels []string             `json:"likelihood_labels"`

	// UsedDefaults records that the tenant had no usable risk_matrix and the
	// built-in 5x5 defaults were substituted. Exposed so tests and the UI can
	// observe the defaulting branch instead of it being a hidden code path.
	UsedDefaults bool `json:"used_defaults"`
}

// Dimension returns the probability/impact bound of the resolved matrix.
func (c *RiskMatrixConfig) Dimension() int {
	return c.Type.Dimension()
}

// HasCriticalBucket reports whether a critical band is configured.
func (c *RiskMatrixConfig) HasCriticalBucket() bool {
	return len(c.Levels.Critical) > 0
}
