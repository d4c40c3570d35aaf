package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sovereign-circuit/loadaudit/calc/circuit"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert spreadsheet panel schedules to YAML",
	Long:  "Convert CSV or Excel panel schedules to the YAML schedule format. Output is written to stdout for piping.",
}

// --- loadaudit convert csv ---

var (
	csvSchedulePath  string
	csvSchedulePanel string
)

var convertCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Convert a CSV panel schedule to YAML",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := circuit.LoadScheduleCSV(csvSchedulePath)
		if err != nil {
			logrus.Fatalf("CSV conversion failed: %v", err)
		}
		if csvSchedulePanel != "" {
			s.Panel = csvSchedulePanel
		}
		writeConverted(s)
	},
}

// --- loadaudit convert xlsx ---

var (
	xlsxSchedulePath  string
	xlsxSchedulePanel string
)

var convertXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Convert the first sheet of an Excel workbook to YAML",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := circuit.LoadScheduleXLSX(xlsxSchedulePath)
		if err != nil {
			logrus.Fatalf("XLSX conversion failed: %v", err)
		}
		if xlsxSchedulePanel != "" {
			s.Panel = xlsxSchedulePanel
		}
		writeConverted(s)
	},
}

// writeConverted validates a converted schedule before printing it, so a bad
// row fails here instead of at audit time.
func writeConverted(s *circuit.Schedule) {
	if err := s.Validate(); err != nil {
		logrus.Fatalf("Converted schedule is invalid: %v", err)
	}
	writeScheduleToStdout(s)
}

func init() {
	convertCSVCmd.Flags().StringVar(&csvSchedulePath, "path", "", "Path to CSV panel schedule")
	convertCSVCmd.Flags().StringVar(&csvSchedulePanel, "panel", "", "Panel name to record in the schedule")
	_ = convertCSVCmd.MarkFlagRequired("path")

	convertXLSXCmd.Flags().StringVar(&xlsxSchedulePath, "path", "", "Path to XLSX workbook")
	convertXLSXCmd.Flags().StringVar(&xlsxSchedulePanel, "panel", "", "Panel name (default: sheet name)")
	_ = convertXLSXCmd.MarkFlagRequired("path")

	convertCmd.AddCommand(convertCSVCmd, convertXLSXCmd)
	rootCmd.AddCommand(convertCmd)
}
