package manualj

import (
	"fmt"
	"io"

	"github.com/sovereign-circuit/loadaudit/calc/internal/render"
)

// Print writes the plain-text Manual J report.
func (r Result) Print(w io.Writer) {
	render.Banner(w, "MANUAL J THERMAL LOAD CALCULATION", "=", 50)
	fmt.Fprintf(w, "Heating Load: %s BTU/h (%.2f tons)\n", render.Commas(r.HeatingLoadBTU, 0), r.HeatingTons)
	fmt.Fprintf(w, "Cooling Load: %s BTU/h (%.2f tons)\n", render.Commas(r.CoolingLoadBTU, 0), r.CoolingTons)
	fmt.Fprintf(w, "Heating: %.2f kW\n", r.HeatingKW)
	fmt.Fprintf(w, "Cooling: %.2f kW\n", r.CoolingKW)
	render.Rule(w, "=", 50)
}
