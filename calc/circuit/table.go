package circuit

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Columns is the header row shared by CSV and XLSX schedules.
// circuit_name, voltage and amps are required; the rest may be omitted.
var Columns = []string{"circuit_name", "voltage", "amps", "phases", "phase", "continuous"}

var requiredColumns = []string{"circuit_name", "voltage", "amps"}

// LoadScheduleCSV reads a CSV panel schedule with a header row.
func LoadScheduleCSV(path string) (*Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV schedule %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file
	return ReadScheduleCSV(file)
}

// ReadScheduleCSV parses CSV rows from r.
func ReadScheduleCSV(r io.Reader) (*Schedule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV schedule: %w", err)
	}
	return scheduleFromRows(rows)
}

// LoadScheduleXLSX reads the first sheet of an Excel workbook.
func LoadScheduleXLSX(path string) (*Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX schedule %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file
	return ReadScheduleXLSX(file)
}

// ReadScheduleXLSX parses the first sheet of the workbook in r.
func ReadScheduleXLSX(r io.Reader) (*Schedule, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // in-memory workbook

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	s, err := scheduleFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	s.Panel = sheet
	return s, nil
}

// scheduleFromRows maps a header row plus data rows onto circuits.
// Blank rows are skipped; short rows leave trailing fields at their zero value.
func scheduleFromRows(rows [][]string) (*Schedule, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty schedule: no header row")
	}
	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	s := &Schedule{Version: ScheduleVersion}
	for rowIdx, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		c, err := parseRow(cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx+2, err)
		}
		s.Circuits = append(s.Circuits, c)
	}
	if len(s.Circuits) == 0 {
		return nil, fmt.Errorf("empty schedule: no data rows")
	}
	return s, nil
}

func parseRow(cell func(string) string) (Circuit, error) {
	c := Circuit{Name: cell("circuit_name")}

	var err error
	if c.Voltage, err = strconv.ParseFloat(cell("voltage"), 64); err != nil {
		return Circuit{}, fmt.Errorf("invalid voltage %q: %w", cell("voltage"), err)
	}
	if c.Amps, err = strconv.ParseFloat(cell("amps"), 64); err != nil {
		return Circuit{}, fmt.Errorf("invalid amps %q: %w", cell("amps"), err)
	}
	if v := cell("phases"); v != "" {
		if c.Phases, err = strconv.Atoi(v); err != nil {
			return Circuit{}, fmt.Errorf("invalid phases %q: %w", v, err)
		}
	}
	c.Phase = strings.ToUpper(cell("phase"))
	if v := cell("continuous"); v != "" {
		if c.Continuous, err = parseBool(v); err != nil {
			return Circuit{}, err
		}
	}
	return c, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "t", "yes", "y", "1":
		return true, nil
	case "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid continuous flag %q", v)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
