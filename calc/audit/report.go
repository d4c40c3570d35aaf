package audit

import (
	"fmt"
	"io"

	"github.com/sovereign-circuit/loadaudit/calc"
	"github.com/sovereign-circuit/loadaudit/calc/circuit"
	"github.com/sovereign-circuit/loadaudit/calc/internal/render"
)

const reportWidth = 60

// Print writes the v2 audit report: total load, phase distribution and
// balance status.
func (r *V2Result) Print(w io.Writer) {
	s := render.NewStyles(w)
	render.Rule(w, "=", reportWidth)
	fmt.Fprintln(w, s.Title.Render("LOAD AUDIT v2 - NEC LOAD CALCULATION"))
	render.Rule(w, "=", reportWidth)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total Load: %.2f kVA\n", r.TotalKVA)
	fmt.Fprintln(w)

	tbl := render.NewTable("Phase Distribution:", "Phase", "Load (kVA)")
	for _, p := range circuit.Phases {
		tbl.AddRow(p, fmt.Sprintf("%.2f", r.PhaseLoads[p]/calc.VAPerKVA))
	}
	fmt.Fprint(w, tbl.View(s))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Phase Imbalance: %.1f%%\n", r.ImbalancePercent)
	if r.PhaseBalanced {
		fmt.Fprintf(w, "Status: %s\n", s.OK.Render("BALANCED"))
	} else {
		fmt.Fprintf(w, "Status: %s\n", s.Warn.Render("IMBALANCED"))
	}
	fmt.Fprintln(w)
}

// Print writes the NEC 517 compliance block.
func (r RedundancyResult) Print(w io.Writer) {
	s := render.NewStyles(w)
	fmt.Fprintln(w, s.Bold.Render("NEC 517 Hospital Compliance:"))
	fmt.Fprintf(w, "  Critical Circuits: %d\n", r.CriticalCircuitsCount)
	if r.HasRedundancy {
		fmt.Fprintf(w, "  N+1 Redundancy: %s\n", s.OK.Render("PASS"))
	} else {
		fmt.Fprintf(w, "  N+1 Redundancy: %s\n", s.Fail.Render("FAIL"))
	}
	if r.MeetsNEC517 {
		fmt.Fprintln(w, "  Continuous Rated: YES")
	} else {
		fmt.Fprintf(w, "  Continuous Rated: %s\n", s.Fail.Render("NO"))
	}
	fmt.Fprintf(w, "  Recommendation: %s\n", r.Recommendation)
	fmt.Fprintln(w)
	render.Rule(w, "=", reportWidth)
}

// Print writes the hospital node report.
func (r *V3Result) Print(w io.Writer) {
	s := render.NewStyles(w)

	if r.HVAC != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Bold.Render(fmt.Sprintf("MANUAL J THERMODYNAMIC LOAD (%s):", r.HVAC.ClimateZone)))
		fmt.Fprintf(w, "   Building: %s sq ft\n", render.Commas(r.HVAC.SquareFeet, 0))
		fmt.Fprintf(w, "   Cooling Load: %s VA\n", render.Commas(r.HVAC.CoolingVA, 0))
		fmt.Fprintf(w, "   Heating Load: %s VA\n", render.Commas(r.HVAC.HeatingVA, 0))
	}

	fmt.Fprintln(w)
	render.Rule(w, "═", reportWidth)
	fmt.Fprintln(w, s.Title.Render("  LOAD AUDIT v3 - HOSPITAL NODE"))
	render.Rule(w, "═", reportWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Bold.Render("ELECTRICAL LOAD:"))
	fmt.Fprintf(w, "   Total Requisitioned: %s VA (%s kVA)\n", render.Commas(r.TotalVA, 0), render.Commas(r.TotalVA/calc.VAPerKVA, 1))
	fmt.Fprintf(w, "   Largest Single Unit: %s VA\n", render.Commas(r.MaxUnitVA, 0))
	fmt.Fprintf(w, "   Circuit Count: %d\n", r.CircuitCount)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Bold.Render("N+1 REDUNDANCY:"))
	fmt.Fprintf(w, "   Option 1 (Full Mirror): %s VA\n", render.Commas(r.MirrorCapacityVA, 0))
	fmt.Fprintf(w, "   Option 2 (N+1 Efficient): %s VA\n", render.Commas(r.NPlusOneVA, 0))
	fmt.Fprintf(w, "   SELECTED: %s VA\n", s.OK.Render(render.Commas(r.SelectedCapacityVA, 0)))

	fmt.Fprintln(w)
	phases := render.NewTable("", "Phase", "Load (VA)")
	for _, p := range r.SortedPhases() {
		phases.AddRow(p, render.Commas(r.PhaseLoads[p], 0))
	}
	fmt.Fprint(w, phases.View(s))
	if r.PhaseWarning {
		fmt.Fprintln(w, s.Warn.Render(fmt.Sprintf("PHASE BALANCE WARNING: %.1f%% imbalance exceeds %.0f%% limit!", r.ImbalancePercent, ImbalanceLimitPercent)))
	} else {
		fmt.Fprintln(w, s.OK.Render(fmt.Sprintf("PHASE BALANCE: %.1f%% (within %.0f%% limit)", r.ImbalancePercent, ImbalanceLimitPercent)))
	}

	if len(r.CriticalCircuits) > 0 {
		fmt.Fprintln(w)
		crit := render.NewTable(fmt.Sprintf("CRITICAL CIRCUITS (NEC 517): %d circuits", len(r.CriticalCircuits)), "Circuit", "VA")
		for _, c := range r.CriticalCircuits {
			crit.AddRow(c.Name, render.Commas(c.VA, 0))
		}
		fmt.Fprint(w, crit.View(s))
	}

	if r.HVAC != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "TOTAL WITH HVAC: %s VA\n", render.Commas(r.HVAC.TotalWithHVACVA, 0))
	}

	fmt.Fprintln(w)
	render.Rule(w, "═", reportWidth)
}
