// Package circuit models branch circuits and the panel schedules that list them.
// It has no dependencies on the audit logic; it only knows how to compute one
// circuit's apparent power and how to read schedules from disk.
package circuit

import (
	"fmt"
	"strings"

	"github.com/sovereign-circuit/loadaudit/calc"
)

// ContinuousMultiplier is the NEC 210.19(A)(1) factor for loads running three
// hours or more.
const ContinuousMultiplier = 1.25

// DefaultPhase is assumed for single-phase circuits with no phase label.
const DefaultPhase = "A"

// Phases lists the panel bus phases in report order.
var Phases = []string{"A", "B", "C"}

var validPhaseLabels = map[string]bool{
	"": true, "A": true, "B": true, "C": true,
}

// Circuit is one branch circuit on a panel schedule.
type Circuit struct {
	Name       string  `json:"circuit_name" yaml:"circuit_name"`
	Voltage    float64 `json:"voltage" yaml:"voltage"`
	Amps       float64 `json:"amps" yaml:"amps"`
	Phases     int     `json:"phases,omitempty" yaml:"phases,omitempty"` // 1 or 3; 0 means 1
	Phase      string  `json:"phase,omitempty" yaml:"phase,omitempty"`   // bus phase for single-phase loads
	Continuous bool    `json:"continuous" yaml:"continuous"`             // runs 3+ hours
}

// IsThreePhase reports whether the circuit is a three-phase load.
func (c Circuit) IsThreePhase() bool {
	return c.Phases == 3
}

// Multiplier returns 1.25 for continuous loads and 1.0 otherwise.
func (c Circuit) Multiplier() float64 {
	if c.Continuous {
		return ContinuousMultiplier
	}
	return 1.0
}

// VA returns the circuit's apparent power in volt-amps, including the
// continuous-load multiplier. Three-phase loads use V × I × √3.
func (c Circuit) VA() float64 {
	va := c.Voltage * c.Amps
	if c.IsThreePhase() {
		va *= calc.Sqrt3
	}
	return va * c.Multiplier()
}

// PhaseOrDefault returns the phase label, or DefaultPhase when unset.
func (c Circuit) PhaseOrDefault() string {
	if c.Phase == "" {
		return DefaultPhase
	}
	return c.Phase
}

// Validate checks that the circuit can be audited.
func (c Circuit) Validate() error {
	if !calc.IsFinite(c.Voltage) || c.Voltage <= 0 {
		return fmt.Errorf("voltage must be a positive finite number, got %v", c.Voltage)
	}
	if !calc.IsFinite(c.Amps) || c.Amps < 0 {
		return fmt.Errorf("amps must be a non-negative finite number, got %v", c.Amps)
	}
	if c.Phases != 0 && c.Phases != 1 && c.Phases != 3 {
		return fmt.Errorf("phases must be 1 or 3, got %d", c.Phases)
	}
	if !validPhaseLabels[c.Phase] {
		return fmt.Errorf("unknown phase %q; valid: A, B, C, or empty", c.Phase)
	}
	return nil
}

// ValidateAll validates every circuit and names the first bad one.
func ValidateAll(circuits []Circuit) error {
	for i, c := range circuits {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("circuit[%d] %q: %w", i, c.Name, err)
		}
	}
	return nil
}

// MatchesAny reports whether name contains any of keywords. Matching is a
// case-sensitive substring test, so "OR" matches "OR-Lighting" but not "Floor".
func MatchesAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(name, k) {
			return true
		}
	}
	return false
}
