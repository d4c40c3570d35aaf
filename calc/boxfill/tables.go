package boxfill

// DefaultVolumePerConductor is used when the largest conductor gauge is not in
// Table 314.16(B). It matches the 12 AWG allowance.
const DefaultVolumePerConductor = 2.25

// VolumePerConductor is NEC Table 314.16(B): cubic inches per conductor,
// keyed by AWG size.
var VolumePerConductor = map[int]float64{
	14: 2.0,
	12: 2.25,
	10: 2.5,
	8:  3.0,
	6:  5.0,
	4:  6.0,
	3:  7.0,
	2:  8.0,
}

// Box is a standard metal box from NEC Table 314.16(A).
type Box struct {
	Name   string  // trade size, e.g. `4" × 1.5" round`
	Volume float64 // cubic inches
}

// StandardBoxes is NEC Table 314.16(A), ordered by ascending volume.
// Selection takes the first entry large enough, so order matters.
var StandardBoxes = []Box{
	{Name: `4" × 1.25" round`, Volume: 12.5},
	{Name: `4" × 1.5" round`, Volume: 15.5},
	{Name: `4" × 2.0" round`, Volume: 21.0},
	{Name: `4" × 2.125" square`, Volume: 30.3},
	{Name: `4" × 2.5" square`, Volume: 34.3},
	{Name: `4-11/16" × 1.5"`, Volume: 42.0},
	{Name: `4-11/16" × 2.0"`, Volume: 54.0},
	{Name: `4-11/16" × 2.125"`, Volume: 60.0},
}

// volumeFor returns the Table 314.16(B) allowance for awg and whether the
// gauge was found.
func volumeFor(awg int) (float64, bool) {
	v, ok := VolumePerConductor[awg]
	if !ok {
		return DefaultVolumePerConductor, false
	}
	return v, true
}

// smallestBox returns the first standard box holding at least required cubic
// inches, or false when every box is too small.
func smallestBox(required float64) (Box, bool) {
	for _, b := range StandardBoxes {
		if b.Volume >= required {
			return b, true
		}
	}
	return Box{}, false
}
