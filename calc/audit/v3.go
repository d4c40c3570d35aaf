package audit

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/sovereign-circuit/loadaudit/calc"
	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

// V3Options configures the hospital node audit. The zero value audits the
// circuits alone with the default v3 keywords.
type V3Options struct {
	SquareFeet       float64            // building area for the HVAC estimate; 0 skips it, negative is an error
	ClimateZone      string             // heating factor lookup; empty means DefaultClimateZone
	Keywords         []string           // critical-circuit keywords; nil means DefaultV3Keywords
	ClimateFactors   map[string]float64 // nil means ClimateHeatingFactors
	CoolingVAPerSqFt float64            // 0 means DefaultCoolingVAPerSqFt
}

// CircuitLoad is one audited circuit: its inputs plus computed VA.
type CircuitLoad struct {
	circuit.Circuit
	VA       float64 `json:"va"`
	Critical bool    `json:"critical"`
}

// V3Result is the hospital node audit. VA figures are unrounded; reports
// format them.
type V3Result struct {
	Circuits     []CircuitLoad `json:"circuits"`
	CircuitCount int           `json:"circuit_count"`
	TotalVA      float64       `json:"total_va"`
	MaxUnitVA    float64       `json:"max_unit_va"`
	MaxUnitName  string        `json:"max_unit_name"`

	// N+1 sizing: full mirror (2× total) versus total plus the largest unit.
	// The larger of the two is selected.
	MirrorCapacityVA   float64 `json:"mirror_capacity_va"`
	NPlusOneVA         float64 `json:"n_plus_one_va"`
	SelectedCapacityVA float64 `json:"selected_capacity_va"`

	PhaseLoads       map[string]float64 `json:"phase_loads"` // keyed by phase label or UnassignedPhase
	ImbalancePercent float64            `json:"imbalance_percent"`
	PhaseWarning     bool               `json:"phase_warning"` // imbalance > limit

	CriticalCircuits []CircuitLoad `json:"critical_circuits"`
	HVAC             *HVACEstimate `json:"hvac,omitempty"`
}

// AuditV3 runs the hospital node audit.
//
// Phase loads are grouped by each circuit's phase label with no three-phase
// spreading. Unlabeled circuits form their own UnassignedPhase group, unless
// no circuit carries a label, in which case everything lands on A.
// Imbalance is only computed when more than one phase group exists; a warning
// is logged when it exceeds ImbalanceLimitPercent.
func AuditV3(circuits []circuit.Circuit, opts V3Options) (*V3Result, error) {
	if len(circuits) == 0 {
		return nil, fmt.Errorf("hospital node audit requires at least one circuit")
	}
	if err := circuit.ValidateAll(circuits); err != nil {
		return nil, err
	}
	keywords := opts.Keywords
	if keywords == nil {
		keywords = DefaultV3Keywords
	}

	groupOf := phaseGrouper(circuits)
	res := &V3Result{
		Circuits:         make([]CircuitLoad, 0, len(circuits)),
		CircuitCount:     len(circuits),
		PhaseLoads:       make(map[string]float64),
		CriticalCircuits: make([]CircuitLoad, 0),
	}
	for i, c := range circuits {
		load := CircuitLoad{
			Circuit:  c,
			VA:       c.VA(),
			Critical: circuit.MatchesAny(c.Name, keywords),
		}
		res.Circuits = append(res.Circuits, load)
		res.TotalVA += load.VA
		if i == 0 || load.VA > res.MaxUnitVA {
			res.MaxUnitVA = load.VA
			res.MaxUnitName = c.Name
		}
		res.PhaseLoads[groupOf(c)] += load.VA
		if load.Critical {
			res.CriticalCircuits = append(res.CriticalCircuits, load)
		}
	}

	res.MirrorCapacityVA = res.TotalVA * 2
	res.NPlusOneVA = res.TotalVA + res.MaxUnitVA
	res.SelectedCapacityVA = max(res.MirrorCapacityVA, res.NPlusOneVA)

	if len(res.PhaseLoads) > 1 {
		res.ImbalancePercent = imbalancePercent(res.PhaseLoads)
	}
	res.PhaseWarning = res.ImbalancePercent > ImbalanceLimitPercent
	if res.PhaseWarning {
		logrus.Warnf("Phase imbalance %.1f%% exceeds %.0f%% limit", res.ImbalancePercent, ImbalanceLimitPercent)
	}

	if opts.SquareFeet != 0 {
		hvac, err := EstimateHVAC(opts.SquareFeet, opts.ClimateZone, res.TotalVA, opts.ClimateFactors, opts.CoolingVAPerSqFt)
		if err != nil {
			return nil, err
		}
		res.HVAC = hvac
	}
	return res, nil
}

// phaseGrouper returns the v3 phase group for a circuit of circuits.
func phaseGrouper(circuits []circuit.Circuit) func(circuit.Circuit) string {
	labeled := false
	for _, c := range circuits {
		if c.Phase != "" {
			labeled = true
			break
		}
	}
	return func(c circuit.Circuit) string {
		switch {
		case c.Phase != "":
			return c.Phase
		case labeled:
			return UnassignedPhase
		default:
			return circuit.DefaultPhase
		}
	}
}

// TotalKVA returns the total load in kVA rounded to one place.
func (r *V3Result) TotalKVA() float64 {
	return calc.Round(r.TotalVA/calc.VAPerKVA, 1)
}

// SortedPhases returns the phase group labels in order.
func (r *V3Result) SortedPhases() []string {
	phases := make([]string, 0, len(r.PhaseLoads))
	for p := range r.PhaseLoads {
		phases = append(phases, p)
	}
	sort.Strings(phases)
	return phases
}
