package service

import (
	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/constants"
)

// Classification is the result of one risk-matrix lookup.
type Classification struct {
	Score      int                  `json:"score"`
	Label      constants.RiskLabel  `json:"label"`
	MatrixType constants.MatrixType `json:"matrix_type"`
}

// ClassifyRisk turns a (probability, impact) pair into the tenant's
// qualitative risk label. score = probability * impact; buckets are checked
// from critical down to low, and a score no bucket covers falls through to
// the matrix's lowest label.
//
// The fall-through deliberately does not distinguish "legitimately low" from
// "misconfigured bucket gap"; that matches the current product behavior and
// any hardening needs a product decision first.
func ClassifyRisk(cfg *models.RiskMatrixConfig, probability, impact int) Classification {
	score := probability * impact

	return Classification{
		Score:      score,
		Label:      labelForScore(cfg, score),
		MatrixType: cfg.Type,
	}
}

func labelForScore(cfg *models.RiskMatrixConfig, score int) constants.RiskLabel {
	switch {
	case containsScore(cfg.Levels.Critical, score):
		return criticalLabel(cfg.Type)
	case containsScore(cfg.Levels.High, score):
		return constants.RiskLabelHigh
	case containsScore(cfg.Levels.Medium, score):
		return constants.RiskLabelMedium
	case containsScore(cfg.Levels.Low, score):
		return constants.RiskLabelLow
	default:
		return fallbackLabel(cfg.Type)
	}
}

// criticalLabel returns the display label of the critical band. The 5-level
// scale tops out at "Muito Alto"; the 4-level scale names its top band
// "Crítico". A 3x3 matrix never reaches here because its critical bucket is
// stripped at resolve time.
func criticalLabel(t constants.MatrixType) constants.RiskLabel {
	if t == constants.Matrix4x4 {
		return constants.RiskLabelCritical
	}
	return constants.RiskLabelVeryHigh
}

// fallbackLabel is the label for scores no bucket covers: the bottom of the
// matrix's own scale.
func fallbackLabel(t constants.MatrixType) constants.RiskLabel {
	if t == constants.Matrix4x4 {
		return constants.RiskLabelLow
	}
	return constants.RiskLabelVeryLow
}

func containsScore(bucket []int, score int) bool {
	for _, s := range bucket {
		if s == score {
			return true
		}
	}
	return false
}
