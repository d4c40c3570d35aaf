package circuit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadSchedule_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := writeFile(t, "panel.yaml", `
version: "1"
panel: LP-1
circuits:
  - circuit_name: ICU-Outlet-A1
    voltage: 120
    amps: 15
    phases: 1
    phase: A
    continuous: true
  - circuit_name: Emergency-Panel
    voltage: 480
    amps: 100
    phases: 3
    continuous: true
`)
	s, err := LoadSchedule(path)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	want := &Schedule{
		Version: "1",
		Panel:   "LP-1",
		Circuits: []Circuit{
			{Name: "ICU-Outlet-A1", Voltage: 120, Amps: 15, Phases: 1, Phase: "A", Continuous: true},
			{Name: "Emergency-Panel", Voltage: 480, Amps: 100, Phases: 3, Continuous: true},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSchedule_UnknownKey_ReturnsError(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
circuits:
  - circuit_name: X
    voltage: 120
    amp: 15
`)
	_, err := LoadSchedule(path)
	assert.Error(t, err)
}

func TestLoadSchedule_MissingVersion_DefaultsToCurrent(t *testing.T) {
	path := writeFile(t, "panel.yml", `
circuits:
  - circuit_name: X
    voltage: 120
    amps: 15
`)
	s, err := LoadSchedule(path)
	require.NoError(t, err)
	assert.Equal(t, ScheduleVersion, s.Version)
}

func TestLoadSchedule_UnsupportedExtension_ReturnsError(t *testing.T) {
	_, err := LoadSchedule("panel.json")
	assert.Error(t, err)
}

func TestSchedule_Validate(t *testing.T) {
	assert.Error(t, (&Schedule{Version: "9", Circuits: HospitalNodeV2()}).Validate())
	assert.Error(t, (&Schedule{Version: "1"}).Validate())
	assert.Error(t, (&Schedule{Circuits: []Circuit{{Name: "x", Voltage: 120, Amps: 1, Phases: 2}}}).Validate())
	assert.NoError(t, (&Schedule{Circuits: HospitalNodeV3()}).Validate())
}

func TestLoadScheduleCSV_ParsesOptionalColumns(t *testing.T) {
	path := writeFile(t, "panel.csv", `circuit_name,voltage,amps,phases,phase,continuous
ICU-Outlet-A1,120,15,1,a,true
Emergency-Panel,480,100,3,,yes

General-Receptacles,120,20,,C,
`)
	s, err := LoadSchedule(path)
	require.NoError(t, err)

	want := []Circuit{
		{Name: "ICU-Outlet-A1", Voltage: 120, Amps: 15, Phases: 1, Phase: "A", Continuous: true},
		{Name: "Emergency-Panel", Voltage: 480, Amps: 100, Phases: 3, Continuous: true},
		{Name: "General-Receptacles", Voltage: 120, Amps: 20, Phase: "C"},
	}
	if diff := cmp.Diff(want, s.Circuits); diff != "" {
		t.Errorf("circuits mismatch (-want +got):\n%s", diff)
	}
}

func TestReadScheduleCSV_Errors(t *testing.T) {
	tests := map[string]string{
		"no rows":          "",
		"missing amps col": "circuit_name,voltage\nX,120\n",
		"bad voltage":      "circuit_name,voltage,amps\nX,abc,1\n",
		"bad continuous":   "circuit_name,voltage,amps,continuous\nX,120,1,maybe\n",
		"header only":      "circuit_name,voltage,amps\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadScheduleCSV(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestReadScheduleXLSX_FirstSheet(t *testing.T) {
	// GIVEN a workbook laid out like an exported panel schedule
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"circuit_name", "voltage", "amps", "phases", "phase", "continuous"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"OR-Lighting", 277, 20, 1, "A", true}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Life-Safety-Pump", 480, 50.5, 3, "", false}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// WHEN read back
	s, err := ReadScheduleXLSX(buf)
	require.NoError(t, err)

	// THEN the sheet name becomes the panel and rows become circuits
	assert.Equal(t, sheet, s.Panel)
	want := []Circuit{
		{Name: "OR-Lighting", Voltage: 277, Amps: 20, Phases: 1, Phase: "A", Continuous: true},
		{Name: "Life-Safety-Pump", Voltage: 480, Amps: 50.5, Phases: 3},
	}
	if diff := cmp.Diff(want, s.Circuits); diff != "" {
		t.Errorf("circuits mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeSchedules_MergesInOrder(t *testing.T) {
	a := &Schedule{Panel: "LP-1", Circuits: HospitalNodeV2()[:2]}
	b := &Schedule{Circuits: HospitalNodeV2()[4:]}

	merged, err := ComposeSchedules([]*Schedule{a, b})
	require.NoError(t, err)

	assert.Equal(t, "LP-1+schedule[1]", merged.Panel)
	assert.Equal(t, ScheduleVersion, merged.Version)
	require.Len(t, merged.Circuits, 5)
	assert.Equal(t, "ICU-Outlet-A1", merged.Circuits[0].Name)
	assert.Equal(t, "General-Receptacles", merged.Circuits[4].Name)
}

func TestComposeSchedules_DuplicateName_ReturnsError(t *testing.T) {
	a := &Schedule{Panel: "LP-1", Circuits: HospitalNodeV2()[:1]}
	b := &Schedule{Panel: "LP-2", Circuits: HospitalNodeV2()[:1]}

	_, err := ComposeSchedules([]*Schedule{a, b})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "LP-1")
		assert.Contains(t, err.Error(), "LP-2")
	}
}

func TestComposeSchedules_Empty_ReturnsError(t *testing.T) {
	_, err := ComposeSchedules(nil)
	assert.Error(t, err)
}
