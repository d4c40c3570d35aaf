package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sovereign-circuit/loadaudit/calc/manualj"
)

var (
	manualjBuildingPath string
	manualjJSON         bool
)

var manualjCmd = &cobra.Command{
	Use:   "manualj",
	Short: "Estimate heating and cooling design loads (simplified ACCA Manual J)",
	Long:  "Estimate design heating and cooling loads for a building described in YAML. Without --building the example home is used.",
	Run: func(cmd *cobra.Command, args []string) {
		b := manualj.ExampleHome()
		if manualjBuildingPath != "" {
			loaded, err := manualj.LoadBuilding(manualjBuildingPath)
			if err != nil {
				logrus.Fatalf("Failed to load building: %v", err)
			}
			b = loaded
		}

		res, err := manualj.Calculate(b)
		if err != nil {
			logrus.Fatalf("Manual J calculation failed: %v", err)
		}

		if manualjJSON {
			if err := writeJSON(os.Stdout, res); err != nil {
				logrus.Fatalf("%v", err)
			}
			return
		}
		res.Print(os.Stdout)
	},
}

func init() {
	manualjCmd.Flags().StringVar(&manualjBuildingPath, "building", "", "Path to a building YAML file (example home when empty)")
	manualjCmd.Flags().BoolVar(&manualjJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(manualjCmd)
}
