package audit

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sovereign-circuit/loadaudit/calc"
)

const (
	// DefaultClimateZone is used when no zone is given.
	DefaultClimateZone = "San Diego CA"
	// DefaultHeatingVAPerSqFt applies to zones missing from the climate table.
	DefaultHeatingVAPerSqFt = 35.0
	// DefaultCoolingVAPerSqFt is the hospital-grade cooling estimate (medical
	// equipment, 15+ air changes per hour), roughly 3-4× residential.
	DefaultCoolingVAPerSqFt = 45.0
)

// ClimateHeatingFactors maps climate zones to heating VA per square foot.
var ClimateHeatingFactors = map[string]float64{
	"San Diego CA":   25,
	"Los Angeles CA": 30,
	"Phoenix AZ":     50,
	"Chicago IL":     45,
	"New York NY":    40,
	"Seattle WA":     20,
}

// HVACEstimate is the simplified VA-per-square-foot HVAC load used by the v3
// audit. It is not a Manual J calculation.
type HVACEstimate struct {
	SquareFeet       float64 `json:"square_feet"`
	ClimateZone      string  `json:"climate_zone"`
	HeatingFactor    float64 `json:"heating_va_per_sq_ft"`
	CoolingFactor    float64 `json:"cooling_va_per_sq_ft"`
	CoolingVA        float64 `json:"cooling_va"`
	HeatingVA        float64 `json:"heating_va"`
	TotalWithHVACVA  float64 `json:"total_with_hvac_va"`
	KnownClimateZone bool    `json:"known_climate_zone"`
}

// EstimateHVAC computes cooling and heating VA for sqFt in zone and adds them
// to electricalVA. factors and coolingPerSqFt fall back to the package
// defaults when nil or zero.
func EstimateHVAC(sqFt float64, zone string, electricalVA float64, factors map[string]float64, coolingPerSqFt float64) (*HVACEstimate, error) {
	if !calc.IsFinite(sqFt) || sqFt < 0 {
		return nil, fmt.Errorf("square footage must be a non-negative finite number, got %v", sqFt)
	}
	if factors == nil {
		factors = ClimateHeatingFactors
	}
	if coolingPerSqFt == 0 {
		coolingPerSqFt = DefaultCoolingVAPerSqFt
	}
	if zone == "" {
		zone = DefaultClimateZone
	}

	heating, known := factors[zone]
	if !known {
		heating = DefaultHeatingVAPerSqFt
		logrus.Debugf("climate zone %q not in table, using %.0f VA/sq ft heating", zone, heating)
	}

	est := &HVACEstimate{
		SquareFeet:       sqFt,
		ClimateZone:      zone,
		HeatingFactor:    heating,
		CoolingFactor:    coolingPerSqFt,
		CoolingVA:        calc.Round(sqFt*coolingPerSqFt, 0),
		HeatingVA:        calc.Round(sqFt*heating, 0),
		KnownClimateZone: known,
	}
	est.TotalWithHVACVA = electricalVA + est.CoolingVA + est.HeatingVA
	return est, nil
}
