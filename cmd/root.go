package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Path to defaults.yaml; built-in tables when empty
	dotenvPath       = ".env"
)

// envFlags maps flag names to the environment variables that seed them.
// A flag given on the command line always wins.
var envFlags = map[string]string{
	"log":               "LOADAUDIT_LOG_LEVEL",
	"defaults-filepath": "LOADAUDIT_DEFAULTS",
	"climate-zone":      "LOADAUDIT_CLIMATE_ZONE",
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "loadaudit",
	Short: "Electrical and thermal load calculators for critical facilities",
	Long: "Box fill sizing (NEC 314.16), hospital panel load audits with N+1 redundancy " +
		"and NEC 517 checks, and Manual J style heating/cooling loads.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv(dotenvPath)
		if err := applyEnvDefaults(cmd); err != nil {
			logrus.Fatalf("Invalid environment setting: %v", err)
		}

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// loadDotEnv exports KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone; a missing file is not an error.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
		logrus.Debugf("loaded environment from %s", path)
	case errors.Is(err, fs.ErrNotExist):
	default:
		logrus.Warnf("ignoring %s: %v", path, err)
	}
}

// applyEnvDefaults sets each env-backed flag the user did not pass explicitly.
func applyEnvDefaults(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for name, key := range envFlags {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s=%q: %w", key, v, err)
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults-filepath", "", "Path to defaults.yaml with climate zones and critical keywords (built-in tables when empty)")
}
