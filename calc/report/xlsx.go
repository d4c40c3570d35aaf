package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sovereign-circuit/loadaudit/calc/audit"
	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

const (
	circuitsSheet = "Circuits"
	summarySheet  = "Summary"
)

// WriteAuditXLSX writes a workbook with the audited circuit schedule on the
// first sheet and the audit summary on a second. The first sheet keeps the
// schedule columns, so the workbook loads back as a panel schedule.
func WriteAuditXLSX(w io.Writer, res *audit.V3Result, meta Meta) error {
	if res == nil {
		return fmt.Errorf("no audit result to export")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	if err := f.SetSheetName(f.GetSheetName(0), circuitsSheet); err != nil {
		return fmt.Errorf("naming circuits sheet: %w", err)
	}
	if err := writeCircuitRows(f, res.Circuits); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("adding summary sheet: %w", err)
	}
	if err := writeSummaryRows(f, res, meta); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing audit workbook: %w", err)
	}
	return nil
}

func writeCircuitRows(f *excelize.File, loads []audit.CircuitLoad) error {
	header := make([]interface{}, 0, len(circuit.Columns)+2)
	for _, col := range circuit.Columns {
		header = append(header, col)
	}
	header = append(header, "va", "critical")
	if err := f.SetSheetRow(circuitsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, c := range loads {
		phases := c.Phases
		if phases == 0 {
			phases = 1
		}
		row := []interface{}{c.Name, c.Voltage, c.Amps, phases, c.Phase, c.Continuous, c.VA, c.Critical}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(circuitsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing circuit %q: %w", c.Name, err)
		}
	}
	return nil
}

func writeSummaryRows(f *excelize.File, res *audit.V3Result, meta Meta) error {
	rows := [][]interface{}{
		{"report_id", meta.ID},
		{"title", meta.Title},
		{"total_va", res.TotalVA},
		{"max_unit_va", res.MaxUnitVA},
		{"max_unit_name", res.MaxUnitName},
		{"circuit_count", res.CircuitCount},
		{"mirror_capacity_va", res.MirrorCapacityVA},
		{"n_plus_one_va", res.NPlusOneVA},
		{"selected_capacity_va", res.SelectedCapacityVA},
		{"imbalance_percent", res.ImbalancePercent},
		{"phase_warning", res.PhaseWarning},
		{"critical_circuits", len(res.CriticalCircuits)},
	}
	for _, p := range res.SortedPhases() {
		rows = append(rows, []interface{}{"phase_" + p + "_va", res.PhaseLoads[p]})
	}
	if res.HVAC != nil {
		rows = append(rows,
			[]interface{}{"climate_zone", res.HVAC.ClimateZone},
			[]interface{}{"square_feet", res.HVAC.SquareFeet},
			[]interface{}{"cooling_va", res.HVAC.CoolingVA},
			[]interface{}{"heating_va", res.HVAC.HeatingVA},
			[]interface{}{"total_with_hvac_va", res.HVAC.TotalWithHVACVA},
		)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}
	return nil
}
