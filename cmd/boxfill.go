package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sovereign-circuit/loadaudit/calc/boxfill"
)

var (
	boxConductors int
	boxAWG        int
	boxDevices    int
	boxGrounds    bool
	boxClamps     bool
	boxFittings   int
	boxJSON       bool
)

var boxfillCmd = &cobra.Command{
	Use:   "boxfill",
	Short: "Size an outlet or junction box per NEC 314.16",
	Run: func(cmd *cobra.Command, args []string) {
		in := boxfill.Input{
			Conductors: boxConductors,
			LargestAWG: boxAWG,
			Devices:    boxDevices,
			Grounds:    boxGrounds,
			Clamps:     boxClamps,
			Fittings:   boxFittings,
		}
		res, err := boxfill.Calculate(in)
		if err != nil {
			logrus.Fatalf("Box fill calculation failed: %v", err)
		}

		if boxJSON {
			if err := writeJSON(os.Stdout, res); err != nil {
				logrus.Fatalf("%v", err)
			}
			return
		}
		res.Print(os.Stdout)
	},
}

func init() {
	boxfillCmd.Flags().IntVar(&boxConductors, "conductors", 0, "Number of current-carrying conductors")
	boxfillCmd.Flags().IntVar(&boxAWG, "awg", 12, "Largest conductor size (AWG); unlisted sizes use 2.25 cu in")
	boxfillCmd.Flags().IntVar(&boxDevices, "devices", 1, "Devices (receptacles, switches), 2 allowances each")
	boxfillCmd.Flags().BoolVar(&boxGrounds, "grounds", true, "Equipment grounding conductors present (1 allowance total)")
	boxfillCmd.Flags().BoolVar(&boxClamps, "clamps", true, "Internal cable clamps present (1 allowance total)")
	boxfillCmd.Flags().IntVar(&boxFittings, "fittings", 0, "Fixture studs and hickeys, 1 allowance each")
	boxfillCmd.Flags().BoolVar(&boxJSON, "json", false, "Print the result as JSON")
	_ = boxfillCmd.MarkFlagRequired("conductors")

	rootCmd.AddCommand(boxfillCmd)
}
