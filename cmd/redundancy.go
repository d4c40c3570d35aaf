package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sovereign-circuit/loadaudit/calc/audit"
)

var (
	redundancyCircuitsPath string
	redundancySample       string
	redundancyKeywords     []string
	redundancyJSON         bool
)

var redundancyCmd = &cobra.Command{
	Use:   "redundancy",
	Short: "Check NEC 517 N+1 redundancy of critical circuits",
	Run: func(cmd *cobra.Command, args []string) {
		keywords := redundancyKeywords
		if !cmd.Flags().Changed("keywords") {
			keywords = mustLoadDefaults().CriticalKeywords.V2
		}

		s, err := resolveSchedule(redundancyCircuitsPath, redundancySample, "hospital-v2")
		if err != nil {
			logrus.Fatalf("Failed to load panel schedule: %v", err)
		}

		res := audit.CheckNPlusOne(s.Circuits, keywords)
		if redundancyJSON {
			if err := writeJSON(os.Stdout, res); err != nil {
				logrus.Fatalf("%v", err)
			}
			return
		}
		res.Print(os.Stdout)
	},
}

func init() {
	redundancyCmd.Flags().StringVar(&redundancyCircuitsPath, "circuits", "", "Path to a panel schedule (.yaml, .yml, .csv, .xlsx)")
	redundancyCmd.Flags().StringVar(&redundancySample, "sample", "", "Bundled sample schedule (hospital-v2, hospital-v3); default hospital-v2")
	redundancyCmd.Flags().StringSliceVar(&redundancyKeywords, "keywords", nil, "Comma-separated critical keywords (default from defaults.yaml)")
	redundancyCmd.Flags().BoolVar(&redundancyJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(redundancyCmd)
}
