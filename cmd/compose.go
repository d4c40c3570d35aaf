package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

var composeFromPaths []string

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Merge multiple panel schedules into one",
	Long:  "Load multiple panel schedules (YAML, CSV or XLSX) and merge their circuit lists. Circuit names must be unique. Output is written to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(composeFromPaths) == 0 {
			logrus.Fatalf("at least one --from flag is required")
		}

		var schedules []*circuit.Schedule
		for _, path := range composeFromPaths {
			s, err := circuit.LoadSchedule(path)
			if err != nil {
				logrus.Fatalf("Failed to load schedule %s: %v", path, err)
			}
			schedules = append(schedules, s)
		}

		merged, err := circuit.ComposeSchedules(schedules)
		if err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
		if err := merged.Validate(); err != nil {
			logrus.Fatalf("Composed schedule is invalid: %v", err)
		}
		writeScheduleToStdout(merged)
	},
}

func init() {
	composeCmd.Flags().StringArrayVar(&composeFromPaths, "from", nil, "Path to a panel schedule (can be repeated)")
	_ = composeCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(composeCmd)
}
