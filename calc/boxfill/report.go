package boxfill

import (
	"fmt"
	"io"

	"github.com/sovereign-circuit/loadaudit/calc/internal/render"
)

const reportWidth = 50

// Print writes the plain-text box fill report.
func (r Result) Print(w io.Writer) {
	render.Banner(w, "BOX FILL CALCULATION - NEC 314.16", "=", reportWidth)
	fmt.Fprintf(w, "Total Volume Allowances: %d\n", r.TotalAllowances)
	fmt.Fprintf(w, "Volume per Conductor: %s cu in\n", render.Float(r.ConductorVolumePerUnit))
	fmt.Fprintf(w, "Required Volume: %s cu in\n", render.Float(r.RequiredCubicInches))
	fmt.Fprintf(w, "Recommended Box: %s\n", r.RecommendedBox)
	fmt.Fprintf(w, "Status: %s\n", r.Compliance)
	render.Rule(w, "=", reportWidth)
}
