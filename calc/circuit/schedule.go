package circuit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ScheduleVersion is the current panel schedule file format version.
const ScheduleVersion = "1"

var validScheduleVersions = map[string]bool{
	"": true, ScheduleVersion: true,
}

// Schedule is a panel schedule: a named list of circuits.
// Loaded from YAML, CSV or XLSX via LoadSchedule(path).
type Schedule struct {
	Version  string    `yaml:"version"`
	Panel    string    `yaml:"panel,omitempty"`
	Circuits []Circuit `yaml:"circuits"`
}

// LoadSchedule reads a panel schedule, choosing the parser by file extension:
// .yaml/.yml (strict, unknown keys rejected), .csv, or .xlsx.
func LoadSchedule(path string) (*Schedule, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return loadScheduleYAML(path)
	case ".csv":
		return LoadScheduleCSV(path)
	case ".xlsx":
		return LoadScheduleXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported schedule format %q; valid: .yaml, .yml, .csv, .xlsx", ext)
	}
}

func loadScheduleYAML(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading panel schedule: %w", err)
	}
	var s Schedule
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing panel schedule: %w", err)
	}
	if s.Version == "" {
		s.Version = ScheduleVersion
	}
	logrus.Debugf("loaded %d circuits from %s", len(s.Circuits), path)
	return &s, nil
}

// Validate checks the version and every circuit in the schedule.
func (s *Schedule) Validate() error {
	if !validScheduleVersions[s.Version] {
		return fmt.Errorf("unknown schedule version %q; valid: %s", s.Version, ScheduleVersion)
	}
	if len(s.Circuits) == 0 {
		return fmt.Errorf("panel schedule has no circuits")
	}
	return ValidateAll(s.Circuits)
}

// ComposeSchedules merges several panel schedules into one. Circuit names
// must stay unique across the merged schedule.
func ComposeSchedules(schedules []*Schedule) (*Schedule, error) {
	if len(schedules) == 0 {
		return nil, fmt.Errorf("at least one schedule required")
	}

	merged := &Schedule{Version: ScheduleVersion}
	seen := make(map[string]string)
	var panels []string
	for i, s := range schedules {
		panel := s.Panel
		if panel == "" {
			panel = fmt.Sprintf("schedule[%d]", i)
		}
		panels = append(panels, panel)
		for _, c := range s.Circuits {
			if prev, dup := seen[c.Name]; dup {
				return nil, fmt.Errorf("circuit %q appears in both %s and %s", c.Name, prev, panel)
			}
			seen[c.Name] = panel
			merged.Circuits = append(merged.Circuits, c)
		}
	}
	merged.Panel = strings.Join(panels, "+")
	return merged, nil
}
