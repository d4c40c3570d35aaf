// Package boxfill sizes outlet and junction boxes per NEC 314.16.
package boxfill

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sovereign-circuit/loadaudit/calc"
)

const (
	// CustomBoxRequired is reported when no standard box is large enough.
	CustomBoxRequired = "CUSTOM BOX REQUIRED"
	// StatusCompliant and StatusOverfilled are the two compliance verdicts.
	StatusCompliant  = "NEC 314.16 COMPLIANT"
	StatusOverfilled = "OVERFILLED - VIOLATION"
)

// Input describes the contents of one box.
type Input struct {
	Conductors int  `json:"conductors" yaml:"conductors"`   // current-carrying conductors entering the box
	LargestAWG int  `json:"largest_awg" yaml:"largest_awg"` // sets the per-allowance volume
	Devices    int  `json:"devices" yaml:"devices"`         // receptacles/switches, 2 allowances each
	Grounds    bool `json:"grounds" yaml:"grounds"`         // all equipment grounds together count once
	Clamps     bool `json:"clamps" yaml:"clamps"`           // internal cable clamps count once
	Fittings   int  `json:"fittings" yaml:"fittings"`       // fixture studs and hickeys, 1 allowance each
}

// DefaultInput returns the common single-device case: 12 AWG, one device,
// grounds and clamps present, no fittings.
func DefaultInput(conductors int) Input {
	return Input{
		Conductors: conductors,
		LargestAWG: 12,
		Devices:    1,
		Grounds:    true,
		Clamps:     true,
	}
}

// Result is the box fill verdict.
type Result struct {
	TotalAllowances        int     `json:"total_allowances"`
	ConductorVolumePerUnit float64 `json:"conductor_volume_per_unit"` // cu in per allowance
	RequiredCubicInches    float64 `json:"required_cubic_inches"`
	RecommendedBox         string  `json:"recommended_box"`
	Compliance             string  `json:"compliance"`
	Compliant              bool    `json:"compliant"`
}

// Validate rejects negative counts.
func (in Input) Validate() error {
	if in.Conductors < 0 {
		return fmt.Errorf("conductors must be non-negative, got %d", in.Conductors)
	}
	if in.Devices < 0 {
		return fmt.Errorf("devices must be non-negative, got %d", in.Devices)
	}
	if in.Fittings < 0 {
		return fmt.Errorf("fittings must be non-negative, got %d", in.Fittings)
	}
	return nil
}

// Allowances counts volume allowances per NEC 314.16(B)(1)-(5).
func (in Input) Allowances() int {
	n := in.Conductors
	if in.Grounds {
		n++
	}
	n += in.Devices * 2
	if in.Clamps {
		n++
	}
	n += in.Fittings
	return n
}

// Calculate computes the required box volume and picks the smallest standard
// box that holds it.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	allowances := in.Allowances()
	perUnit, known := volumeFor(in.LargestAWG)
	if !known {
		logrus.Debugf("AWG %d not in Table 314.16(B), using %.2f cu in", in.LargestAWG, perUnit)
	}
	required := float64(allowances) * perUnit

	res := Result{
		TotalAllowances:        allowances,
		ConductorVolumePerUnit: perUnit,
		RequiredCubicInches:    calc.Round(required, 2),
		RecommendedBox:         CustomBoxRequired,
		Compliance:             StatusOverfilled,
	}
	if box, ok := smallestBox(required); ok {
		res.RecommendedBox = box.Name
		res.Compliance = StatusCompliant
		res.Compliant = true
	}
	return res, nil
}
