package audit

import (
	"github.com/sirupsen/logrus"

	"github.com/sovereign-circuit/loadaudit/calc"
	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

// V2Result is the v2 load audit summary. All values are rounded to 2 places.
type V2Result struct {
	TotalVA          float64            `json:"total_va"`
	TotalKVA         float64            `json:"total_kva"`
	PhaseLoads       map[string]float64 `json:"phase_loads"` // keys A, B, C
	ImbalancePercent float64            `json:"imbalance_percent"`
	PhaseBalanced    bool               `json:"phase_balanced"`
}

// AuditV2 totals circuit VA and checks A/B/C phase balance.
//
// Single-phase loads land on their own phase (A when unlabeled); three-phase
// loads are split equally across all three. The panel is balanced when the
// imbalance is strictly below ImbalanceLimitPercent. An empty list is a
// zero-load, balanced panel.
func AuditV2(circuits []circuit.Circuit) (*V2Result, error) {
	if err := circuit.ValidateAll(circuits); err != nil {
		return nil, err
	}

	totalVA := 0.0
	phaseLoads := map[string]float64{"A": 0, "B": 0, "C": 0}
	for _, c := range circuits {
		va := c.VA()
		totalVA += va
		if c.IsThreePhase() {
			for _, p := range circuit.Phases {
				phaseLoads[p] += va / 3
			}
		} else {
			phaseLoads[c.PhaseOrDefault()] += va
		}
	}

	imbalance := imbalancePercent(phaseLoads)
	res := &V2Result{
		TotalVA:          calc.Round(totalVA, 2),
		TotalKVA:         calc.Round(totalVA/calc.VAPerKVA, 2),
		PhaseLoads:       make(map[string]float64, len(phaseLoads)),
		ImbalancePercent: calc.Round(imbalance, 2),
		PhaseBalanced:    imbalance < ImbalanceLimitPercent,
	}
	for p, v := range phaseLoads {
		res.PhaseLoads[p] = calc.Round(v, 2)
	}

	if !res.PhaseBalanced {
		logrus.Warnf("Phase imbalance %.1f%% exceeds %.0f%% limit", imbalance, ImbalanceLimitPercent)
	}
	return res, nil
}
