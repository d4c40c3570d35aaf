package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sovereign-circuit/loadaudit/calc"
	"github.com/sovereign-circuit/loadaudit/calc/audit"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	ClimateZones     map[string]float64 `yaml:"climate_zones"`        // heating VA per sq ft by zone
	CoolingVAPerSqFt float64            `yaml:"cooling_va_per_sq_ft"` // applies to every zone
	CriticalKeywords KeywordConfig      `yaml:"critical_keywords"`
}

// KeywordConfig holds the critical-circuit keyword list for each auditor.
type KeywordConfig struct {
	V2 []string `yaml:"v2"`
	V3 []string `yaml:"v3"`
}

// builtinConfig mirrors the tables compiled into the audit package.
func builtinConfig() Config {
	zones := make(map[string]float64, len(audit.ClimateHeatingFactors))
	for k, v := range audit.ClimateHeatingFactors {
		zones[k] = v
	}
	return Config{
		ClimateZones:     zones,
		CoolingVAPerSqFt: audit.DefaultCoolingVAPerSqFt,
		CriticalKeywords: KeywordConfig{
			V2: append([]string(nil), audit.DefaultV2Keywords...),
			V3: append([]string(nil), audit.DefaultV3Keywords...),
		},
	}
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// An empty path yields the built-in tables; sections missing from the file
// fall back to them individually. Uses strict field checking.
func loadDefaultsConfig(path string) (Config, error) {
	builtin := builtinConfig()
	if path == "" {
		return builtin, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults YAML: %w", err)
	}

	if cfg.ClimateZones == nil {
		cfg.ClimateZones = builtin.ClimateZones
	}
	if cfg.CoolingVAPerSqFt == 0 {
		cfg.CoolingVAPerSqFt = builtin.CoolingVAPerSqFt
	}
	if cfg.CriticalKeywords.V2 == nil {
		cfg.CriticalKeywords.V2 = builtin.CriticalKeywords.V2
	}
	if cfg.CriticalKeywords.V3 == nil {
		cfg.CriticalKeywords.V3 = builtin.CriticalKeywords.V3
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("defaults file %s: %w", path, err)
	}
	logrus.Debugf("loaded %d climate zones from %s", len(cfg.ClimateZones), path)
	return cfg, nil
}

// Validate rejects negative or non-finite factors and empty keyword lists.
func (c Config) Validate() error {
	for zone, v := range c.ClimateZones {
		if !calc.IsFinite(v) || v < 0 {
			return fmt.Errorf("climate zone %q: heating factor must be a non-negative finite number, got %v", zone, v)
		}
	}
	if !calc.IsFinite(c.CoolingVAPerSqFt) || c.CoolingVAPerSqFt < 0 {
		return fmt.Errorf("cooling_va_per_sq_ft must be a non-negative finite number, got %v", c.CoolingVAPerSqFt)
	}
	if len(c.CriticalKeywords.V2) == 0 || len(c.CriticalKeywords.V3) == 0 {
		return fmt.Errorf("critical_keywords.v2 and critical_keywords.v3 must not be empty")
	}
	return nil
}

// mustLoadDefaults loads the --defaults-filepath config or exits.
func mustLoadDefaults() Config {
	cfg, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		logrus.Fatalf("Failed to load defaults: %v", err)
	}
	return cfg
}
