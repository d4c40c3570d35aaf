package boxfill

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func TestCalculate_DefaultReceptacleBox(t *testing.T) {
	// GIVEN three 12 AWG conductors, one receptacle, grounds and clamps
	got, err := Calculate(DefaultInput(3))
	require.NoError(t, err)

	// THEN 3 + 1 + 2 + 1 = 7 allowances at 2.25 cu in fit the 21.0 cu in round box
	want := Result{
		TotalAllowances:        7,
		ConductorVolumePerUnit: 2.25,
		RequiredCubicInches:    15.75,
		RecommendedBox:         `4" × 2.0" round`,
		Compliance:             StatusCompliant,
		Compliant:              true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Calculate mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_TableLookups(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantAllow int
		wantPer   float64
		wantReq   float64
		wantBox   string
	}{
		{
			name:      "two devices fill the largest box",
			in:        Input{Conductors: 20, LargestAWG: 12, Devices: 2, Grounds: true, Clamps: true},
			wantAllow: 26, wantPer: 2.25, wantReq: 58.5, wantBox: `4-11/16" × 2.125"`,
		},
		{
			name:      "6 AWG uses 5.0 cu in",
			in:        Input{Conductors: 4, LargestAWG: 6, Devices: 1, Grounds: true, Clamps: true},
			wantAllow: 8, wantPer: 5.0, wantReq: 40.0, wantBox: `4-11/16" × 1.5"`,
		},
		{
			name:      "required volume equal to box volume fits",
			in:        Input{Conductors: 17, LargestAWG: 14, Devices: 1, Grounds: true, Clamps: true},
			wantAllow: 21, wantPer: 2.0, wantReq: 42.0, wantBox: `4-11/16" × 1.5"`,
		},
		{
			name:      "bare conductors only",
			in:        Input{Conductors: 2, LargestAWG: 14},
			wantAllow: 2, wantPer: 2.0, wantReq: 4.0, wantBox: `4" × 1.25" round`,
		},
		{
			name:      "fittings add one each",
			in:        Input{Conductors: 2, LargestAWG: 10, Fittings: 3},
			wantAllow: 5, wantPer: 2.5, wantReq: 12.5, wantBox: `4" × 1.25" round`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllow, got.TotalAllowances)
			assert.Equal(t, tt.wantPer, got.ConductorVolumePerUnit)
			assert.InDelta(t, tt.wantReq, got.RequiredCubicInches, 1e-9)
			assert.Equal(t, tt.wantBox, got.RecommendedBox)
			assert.True(t, got.Compliant)
		})
	}
}

func TestCalculate_UnknownGauge_FallsBackTo12AWGVolume(t *testing.T) {
	in := DefaultInput(3)
	in.LargestAWG = 18

	got, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, DefaultVolumePerConductor, got.ConductorVolumePerUnit)
	assert.InDelta(t, 15.75, got.RequiredCubicInches, 1e-9)
}

func TestCalculate_Overfilled_RequiresCustomBox(t *testing.T) {
	// GIVEN more conductors than the 60 cu in box can hold
	got, err := Calculate(DefaultInput(30))
	require.NoError(t, err)

	// THEN 34 allowances * 2.25 = 76.5 cu in has no standard box
	assert.Equal(t, 34, got.TotalAllowances)
	assert.InDelta(t, 76.5, got.RequiredCubicInches, 1e-9)
	assert.Equal(t, CustomBoxRequired, got.RecommendedBox)
	assert.Equal(t, StatusOverfilled, got.Compliance)
	assert.False(t, got.Compliant)
}

func TestCalculate_NegativeCounts_ReturnError(t *testing.T) {
	for _, in := range []Input{
		{Conductors: -1},
		{Conductors: 2, Devices: -1},
		{Conductors: 2, Fittings: -2},
	} {
		_, err := Calculate(in)
		assert.Error(t, err, "input %+v", in)
	}
}

func TestStandardBoxes_AscendingVolume(t *testing.T) {
	for i := 1; i < len(StandardBoxes); i++ {
		assert.Greater(t, StandardBoxes[i].Volume, StandardBoxes[i-1].Volume,
			"box %q must be larger than %q", StandardBoxes[i].Name, StandardBoxes[i-1].Name)
	}
}

func TestResult_Print_ListsAllFields(t *testing.T) {
	res, err := Calculate(DefaultInput(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	res.Print(&buf)
	out := buf.String()

	assert.Contains(t, out, "BOX FILL CALCULATION - NEC 314.16")
	assert.Contains(t, out, "Total Volume Allowances: 7")
	assert.Contains(t, out, "Volume per Conductor: 2.25 cu in")
	assert.Contains(t, out, "Required Volume: 15.75 cu in")
	assert.Contains(t, out, `Recommended Box: 4" × 2.0" round`)
	assert.Contains(t, out, "Status: NEC 314.16 COMPLIANT")
}

func TestResult_Print_WholeVolumesKeepDecimal(t *testing.T) {
	// GIVEN two 14 AWG conductors and nothing else
	res, err := Calculate(Input{Conductors: 2, LargestAWG: 14})
	require.NoError(t, err)

	// WHEN printed
	var buf bytes.Buffer
	res.Print(&buf)
	out := buf.String()

	// THEN whole-number volumes still show one decimal place
	assert.Contains(t, out, "Volume per Conductor: 2.0 cu in")
	assert.Contains(t, out, "Required Volume: 4.0 cu in")
	assert.Contains(t, out, strings.Repeat("=", 50)+"\nBOX FILL CALCULATION - NEC 314.16\n")
}
