package service

import (
	"context"
	"sort"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/utils"
)

// DomainRisk is the aggregated risk posture of one control domain.
type DomainRisk struct {
	Domain           string  `json:"domain"`
	TotalControls    int     `json:"total_controls"`
	AvgRiskScore     float64 `json:"avg_risk_score"`
	HighRiskControls int     `json:"high_risk_controls"`
	IsHighRisk       bool    `json:"is_high_risk"`
}

// HeatmapReport is the risk-heatmap analysis payload.
type HeatmapReport struct {
	Domains               []DomainRisk `json:"domains"`
	HighRiskDomains       []string     `json:"high_risk_domains"`
	TotalHighRiskControls int          `json:"total_high_risk_controls"`
}

// BuildRiskHeatmap aggregates per-control maturity into per-domain risk. Each
// control's risk score is the inverted maturity scale (6 - maturity_level, so
// maturity 1 ↔ risk 5); an unanswered control counts as maturity 0 and lands
// at the top of the risk scale. Controls with risk score >= 4 are high risk;
// domains averaging >= 3.5 are flagged.
func BuildRiskHeatmap(ctx context.Context, assessments []models.AssessmentRecord) (*HeatmapReport, error) {
	type domainAccum struct {
		total    int
		sum      float64
		highRisk int
	}
	accum := make(map[string]*domainAccum)

	for i := range assessments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := range assessments[i].Responses {
			resp := &assessments[i].Responses[j]
			riskScore := 6 - resp.MaturityOrZero()

			d := accum[resp.Domain]
			if d == nil {
				d = &domainAccum{}
				accum[resp.Domain] = d
			}
			d.total++
			d.sum += riskScore
			if riskScore >= constants.RiskScoreHighThreshold {
				d.highRisk++
			}
		}
	}

	report := &HeatmapReport{
		Domains:         make([]DomainRisk, 0, len(accum)),
		HighRiskDomains: []string{},
	}

	domains := make([]string, 0, len(accum))
	for name := range accum {
		domains = append(domains, name)
	}
	sort.Strings(domains)

	for _, name := range domains {
		d := accum[name]
		avg := utils.Round2(d.sum / float64(d.total))

		domainRisk := DomainRisk{
			Domain:           name,
			TotalControls:    d.total,
			AvgRiskScore:     avg,
			HighRiskControls: d.highRisk,
			IsHighRisk:       avg >= constants.DomainRiskHighThreshold,
		}
		report.Domains = append(report.Domains, domainRisk)
		report.TotalHighRiskControls += d.highRisk
		if domainRisk.IsHighRisk {
			report.HighRiskDomains = append(report.HighRiskDomains, name)
		}
	}

	return report, nil
}
