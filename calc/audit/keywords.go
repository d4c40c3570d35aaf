package audit

// ImbalanceLimitPercent is the phase imbalance limit used by both auditors.
const ImbalanceLimitPercent = 10.0

// UnassignedPhase groups v3 circuits without a phase label when other
// circuits on the panel are labeled.
const UnassignedPhase = "unassigned"

// DefaultV2Keywords mark NEC 517 critical circuits in the v2 redundancy check.
var DefaultV2Keywords = []string{"ICU", "OR", "Emergency", "Life Safety", "Critical"}

// DefaultV3Keywords extend the v2 list with nurse call systems.
var DefaultV3Keywords = []string{"ICU", "OR", "Emergency", "Life Safety", "Critical", "Nurse"}

// imbalancePercent returns (max-min)/max*100 over loads, or 0 when max <= 0.
func imbalancePercent(loads map[string]float64) float64 {
	first := true
	var maxLoad, minLoad float64
	for _, v := range loads {
		if first {
			maxLoad, minLoad = v, v
			first = false
			continue
		}
		if v > maxLoad {
			maxLoad = v
		}
		if v < minLoad {
			minLoad = v
		}
	}
	if maxLoad <= 0 {
		return 0
	}
	return (maxLoad - minLoad) / maxLoad * 100
}
