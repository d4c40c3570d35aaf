package calc

import (
	"math"
	"strconv"
)

const (
	// BTUPerTon is one ton of refrigeration in BTU/h.
	BTUPerTon = 12000.0
	// BTUPerKW converts BTU/h to kW.
	BTUPerKW = 3412.0
	// BTUPerWatt converts connected watts to BTU/h of heat gain.
	BTUPerWatt = 3.41
	// VAPerKVA converts volt-amps to kilovolt-amps.
	VAPerKVA = 1000.0
)

// Sqrt3 is the line-to-line factor for balanced three-phase power.
var Sqrt3 = math.Sqrt(3)

// Round rounds the exact binary value of x to the given number of decimal
// places, ties to even, so 2.675 rounds to 2.67. Non-finite values are
// returned unchanged.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
