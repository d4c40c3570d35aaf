package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

// autoArtifact is the value an artifact flag takes when given without a path.
const autoArtifact = "auto"

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeSchedule marshals a panel schedule to YAML on w.
func writeSchedule(w io.Writer, s *circuit.Schedule) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// writeScheduleToStdout marshals a panel schedule to YAML and writes to stdout.
func writeScheduleToStdout(s *circuit.Schedule) {
	if err := writeSchedule(os.Stdout, s); err != nil {
		logrus.Fatalf("%v", err)
	}
}

// writeArtifact creates path and fills it with write. The file is removed
// again if write fails.
func writeArtifact(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	logrus.Infof("wrote %s", path)
	return nil
}

// resolveSchedule returns the schedule at path, or the named sample when no
// path is given. fallback names the sample used when both are empty.
func resolveSchedule(path, sample, fallback string) (*circuit.Schedule, error) {
	if path != "" && sample != "" {
		return nil, fmt.Errorf("--circuits and --sample are mutually exclusive")
	}
	var s *circuit.Schedule
	if path != "" {
		loaded, err := circuit.LoadSchedule(path)
		if err != nil {
			return nil, err
		}
		s = loaded
	} else {
		if sample == "" {
			sample = fallback
		}
		named, ok := circuit.Sample(sample)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q; valid: hospital-v2, hospital-v3", sample)
		}
		s = named
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
