package audit

import (
	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

const (
	RecommendationPass          = "PASS"
	RecommendationAddRedundancy = "ADD REDUNDANCY"
)

// RedundancyResult is the NEC 517 N+1 check for health care facilities.
type RedundancyResult struct {
	CriticalCircuitsCount int      `json:"critical_circuits_count"`
	CriticalCircuits      []string `json:"critical_circuits"`
	HasRedundancy         bool     `json:"has_redundancy"`
	MeetsNEC517           bool     `json:"meets_nec_517"`
	Recommendation        string   `json:"recommendation"`
}

// CheckNPlusOne finds critical circuits by name keyword and checks that there
// are at least two of them (N+1) and that all of them are continuous-rated.
// A nil keywords slice uses DefaultV2Keywords. With no critical circuits the
// continuous-rating check passes vacuously but redundancy fails.
func CheckNPlusOne(circuits []circuit.Circuit, keywords []string) RedundancyResult {
	if keywords == nil {
		keywords = DefaultV2Keywords
	}

	res := RedundancyResult{MeetsNEC517: true, CriticalCircuits: make([]string, 0)}
	for _, c := range circuits {
		if !circuit.MatchesAny(c.Name, keywords) {
			continue
		}
		res.CriticalCircuits = append(res.CriticalCircuits, c.Name)
		if !c.Continuous {
			res.MeetsNEC517 = false
		}
	}
	res.CriticalCircuitsCount = len(res.CriticalCircuits)
	res.HasRedundancy = res.CriticalCircuitsCount >= 2
	res.Recommendation = RecommendationAddRedundancy
	if res.HasRedundancy {
		res.Recommendation = RecommendationPass
	}
	return res
}
