package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnvTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "probe", Run: func(*cobra.Command, []string) {}}
	var level, zone string
	c.Flags().StringVar(&level, "log", "warn", "")
	c.Flags().StringVar(&zone, "climate-zone", "San Diego CA", "")
	return c
}

func TestApplyEnvDefaults_UnsetFlag_TakesEnvironmentValue(t *testing.T) {
	// GIVEN the climate zone is set in the environment
	t.Setenv("LOADAUDIT_CLIMATE_ZONE", "Phoenix AZ")
	c := newEnvTestCommand(t)
	require.NoError(t, c.ParseFlags(nil))

	// WHEN env defaults are applied
	require.NoError(t, applyEnvDefaults(c))

	// THEN the flag picks it up
	got, err := c.Flags().GetString("climate-zone")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix AZ", got)
}

func TestApplyEnvDefaults_ExplicitFlag_WinsOverEnvironment(t *testing.T) {
	t.Setenv("LOADAUDIT_LOG_LEVEL", "debug")
	c := newEnvTestCommand(t)
	require.NoError(t, c.ParseFlags([]string{"--log", "error"}))

	require.NoError(t, applyEnvDefaults(c))

	got, err := c.Flags().GetString("log")
	require.NoError(t, err)
	assert.Equal(t, "error", got)
}

func TestApplyEnvDefaults_FlagNotOnCommand_Ignored(t *testing.T) {
	t.Setenv("LOADAUDIT_DEFAULTS", "/nowhere/defaults.yaml")
	c := newEnvTestCommand(t)
	require.NoError(t, c.ParseFlags(nil))

	assert.NoError(t, applyEnvDefaults(c))
}

func TestLoadDotEnv_ExportsUnsetVariables(t *testing.T) {
	// GIVEN a .env file with one new and one already-set variable
	t.Setenv("LOADAUDIT_TEST_PRESET", "from-shell")
	t.Cleanup(func() { _ = os.Unsetenv("LOADAUDIT_TEST_FRESH") })
	path := filepath.Join(t.TempDir(), ".env")
	body := "LOADAUDIT_TEST_FRESH=from-file\nLOADAUDIT_TEST_PRESET=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	// WHEN loaded
	loadDotEnv(path)

	// THEN only the unset variable is taken from the file
	assert.Equal(t, "from-file", os.Getenv("LOADAUDIT_TEST_FRESH"))
	assert.Equal(t, "from-shell", os.Getenv("LOADAUDIT_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFile_NoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		loadDotEnv(filepath.Join(t.TempDir(), ".env"))
	})
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"boxfill", "audit", "redundancy", "manualj", "convert", "compose"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
