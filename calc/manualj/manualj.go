// Package manualj estimates residential heating and cooling loads with a
// simplified ACCA Manual J method: envelope conduction plus solar and
// internal gains.
package manualj

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sovereign-circuit/loadaudit/calc"
)

// Envelope and gain coefficients.
const (
	// WallAreaRatio approximates wall area as a fraction of floor area.
	WallAreaRatio = 0.3
	// WindowRValue gives windows a U-factor of 1/3.
	WindowRValue = 3.0
	// SolarGainPerSqFt is peak solar BTU/h per sq ft of glass at SHGC 1.0.
	SolarGainPerSqFt = 150.0
	// BTUPerOccupant is the sensible + latent gain per person.
	BTUPerOccupant = 400.0
	// SafetyFactor is applied to both heating and cooling.
	SafetyFactor = 1.1
)

// Building is the envelope and occupancy description.
type Building struct {
	SquareFootage     float64 `json:"square_footage" yaml:"square_footage"`
	CeilingHeight     float64 `json:"ceiling_height" yaml:"ceiling_height"` // feet
	InsulationRValue  float64 `json:"insulation_r_value" yaml:"insulation_r_value"`
	WindowSHGC        float64 `json:"window_shgc" yaml:"window_shgc"` // 0-1
	WindowAreaSqFt    float64 `json:"window_area_sqft" yaml:"window_area_sqft"`
	OutdoorDesignTemp float64 `json:"outdoor_design_temp" yaml:"outdoor_design_temp"` // °F
	IndoorDesignTemp  float64 `json:"indoor_design_temp" yaml:"indoor_design_temp"`   // °F
	Occupants         int     `json:"occupants" yaml:"occupants"`
	LightingWatts     float64 `json:"lighting_watts" yaml:"lighting_watts"`
	ApplianceWatts    float64 `json:"appliance_watts" yaml:"appliance_watts"`
}

// Result holds the design loads. BTU values are rounded to whole numbers,
// tons and kW to two places.
type Result struct {
	HeatingLoadBTU float64 `json:"heating_load_btu"`
	CoolingLoadBTU float64 `json:"cooling_load_btu"`
	HeatingTons    float64 `json:"heating_tons"`
	CoolingTons    float64 `json:"cooling_tons"`
	HeatingKW      float64 `json:"heating_kw"`
	CoolingKW      float64 `json:"cooling_kw"`

	VolumeCuFt   float64 `json:"volume_cu_ft"`
	DeltaT       float64 `json:"delta_t"`
	EnvelopeUA   float64 `json:"envelope_ua"` // BTU/h·°F
	SolarGainBTU float64 `json:"solar_gain_btu"`
	InternalBTU  float64 `json:"internal_gain_btu"`
}

// ExampleHome is a 2,500 sq ft house used by the CLI when no building file
// is given.
func ExampleHome() Building {
	return Building{
		SquareFootage:     2500,
		CeilingHeight:     9,
		InsulationRValue:  30,
		WindowSHGC:        0.25,
		WindowAreaSqFt:    400,
		OutdoorDesignTemp: 95,
		IndoorDesignTemp:  75,
		Occupants:         4,
		LightingWatts:     1500,
		ApplianceWatts:    3000,
	}
}

// Validate rejects inputs the formulas cannot use.
func (b Building) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"square_footage", b.SquareFootage},
		{"ceiling_height", b.CeilingHeight},
		{"window_area_sqft", b.WindowAreaSqFt},
		{"lighting_watts", b.LightingWatts},
		{"appliance_watts", b.ApplianceWatts},
	}
	for _, f := range fields {
		if !calc.IsFinite(f.val) || f.val < 0 {
			return fmt.Errorf("%s must be a non-negative finite number, got %v", f.name, f.val)
		}
	}
	if !calc.IsFinite(b.InsulationRValue) || b.InsulationRValue <= 0 {
		return fmt.Errorf("insulation_r_value must be positive, got %v", b.InsulationRValue)
	}
	if !calc.IsFinite(b.WindowSHGC) || b.WindowSHGC < 0 || b.WindowSHGC > 1 {
		return fmt.Errorf("window_shgc must be in [0, 1], got %v", b.WindowSHGC)
	}
	if !calc.IsFinite(b.OutdoorDesignTemp) || !calc.IsFinite(b.IndoorDesignTemp) {
		return fmt.Errorf("design temperatures must be finite, got outdoor=%v indoor=%v", b.OutdoorDesignTemp, b.IndoorDesignTemp)
	}
	if b.Occupants < 0 {
		return fmt.Errorf("occupants must be non-negative, got %d", b.Occupants)
	}
	return nil
}

// EnvelopeUA returns the envelope conductance in BTU/h·°F: walls at
// WallAreaRatio of floor area through the insulation R-value, plus windows.
func (b Building) EnvelopeUA() float64 {
	return b.SquareFootage*WallAreaRatio/b.InsulationRValue + b.WindowAreaSqFt/WindowRValue
}

// Calculate computes heating and cooling design loads.
//
// Conduction uses the absolute indoor/outdoor difference, so the same
// envelope term feeds both heating and cooling. Cooling adds solar gain
// through glass and internal gains from people, lighting and appliances.
func Calculate(b Building) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, err
	}

	deltaT := b.IndoorDesignTemp - b.OutdoorDesignTemp
	ua := b.EnvelopeUA()
	conduction := ua * math.Abs(deltaT)

	heating := conduction * SafetyFactor

	solar := b.WindowAreaSqFt * b.WindowSHGC * SolarGainPerSqFt
	internal := float64(b.Occupants)*BTUPerOccupant +
		b.LightingWatts*calc.BTUPerWatt +
		b.ApplianceWatts*calc.BTUPerWatt

	cooling := (conduction + solar + internal) * SafetyFactor

	return Result{
		HeatingLoadBTU: calc.Round(heating, 0),
		CoolingLoadBTU: calc.Round(cooling, 0),
		HeatingTons:    calc.Round(heating/calc.BTUPerTon, 2),
		CoolingTons:    calc.Round(cooling/calc.BTUPerTon, 2),
		HeatingKW:      calc.Round(heating/calc.BTUPerKW, 2),
		CoolingKW:      calc.Round(cooling/calc.BTUPerKW, 2),
		VolumeCuFt:     b.SquareFootage * b.CeilingHeight,
		DeltaT:         deltaT,
		EnvelopeUA:     ua,
		SolarGainBTU:   solar,
		InternalBTU:    internal,
	}, nil
}

// LoadBuilding reads a building description from YAML. Unknown keys are
// rejected.
func LoadBuilding(path string) (Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Building{}, fmt.Errorf("reading building file: %w", err)
	}
	var b Building
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&b); err != nil {
		return Building{}, fmt.Errorf("parsing building file: %w", err)
	}
	return b, nil
}
