package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/sovereign-circuit/loadaudit/calc"
	"github.com/sovereign-circuit/loadaudit/calc/audit"
	"github.com/sovereign-circuit/loadaudit/calc/internal/render"
)

// Chart geometry on a landscape A4 page, in mm.
const (
	chartLeft   = 25.0
	chartTop    = 40.0
	chartWidth  = 250.0
	chartHeight = 110.0
	barGapRatio = 0.25
)

type rgb struct{ r, g, b int }

var (
	colorCritical = rgb{139, 0, 0}    // darkred
	colorCircuit  = rgb{178, 34, 34}  // firebrick
	colorCeiling  = rgb{255, 215, 0}  // gold
	colorCooling  = rgb{0, 170, 200}  // cyan
	colorGrid     = rgb{200, 200, 200}
)

// WriteAuditPDF renders a v3 audit as a two-page PDF: a summary page and the
// thermal signature chart (one bar per circuit, the N+1 ceiling, and the
// cooling line when an HVAC estimate exists).
func WriteAuditPDF(w io.Writer, res *audit.V3Result, meta Meta) error {
	if res == nil {
		return fmt.Errorf("no audit result to render")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.ID, true)
	pdf.SetCreator("loadaudit", true)

	writeSummaryPage(pdf, tr, res, meta)
	writeChartPage(pdf, tr, res)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing audit PDF: %w", err)
	}
	return nil
}

func writeSummaryPage(pdf *gofpdf.Fpdf, tr func(string) string, res *audit.V3Result, meta Meta) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr("Project: "+meta.Project))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Report ID: "+meta.ID)
	pdf.Ln(6)
	if !meta.GeneratedAt.IsZero() {
		pdf.Cell(0, 6, "Date: "+meta.GeneratedAt.Format("2006-01-02 15:04"))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(80, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
	}
	va := func(v float64) string { return render.Commas(v, 0) + " VA" }

	line("Total load", fmt.Sprintf("%s (%s kVA)", va(res.TotalVA), render.Commas(res.TotalVA/calc.VAPerKVA, 1)))
	line("Largest single unit", fmt.Sprintf("%s (%s)", va(res.MaxUnitVA), res.MaxUnitName))
	line("Circuit count", fmt.Sprintf("%d", res.CircuitCount))
	line("Option 1 (full mirror)", va(res.MirrorCapacityVA))
	line("Option 2 (N+1 efficient)", va(res.NPlusOneVA))
	line("Selected capacity", va(res.SelectedCapacityVA))
	status := "within limit"
	if res.PhaseWarning {
		status = "exceeds limit"
	}
	line("Phase imbalance", fmt.Sprintf("%.1f%% (%s)", res.ImbalancePercent, status))
	line("Critical circuits (NEC 517)", fmt.Sprintf("%d", len(res.CriticalCircuits)))
	if res.HVAC != nil {
		line(fmt.Sprintf("Cooling (%s)", res.HVAC.ClimateZone), va(res.HVAC.CoolingVA))
		line("Heating", va(res.HVAC.HeatingVA))
		line("Total with HVAC", va(res.HVAC.TotalWithHVACVA))
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{90, 25, 25, 20, 15, 25, 40}
	headers := []string{"Circuit", "Voltage", "Amps", "Phases", "Phase", "Cont.", "VA"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, c := range res.Circuits {
		phases := c.Phases
		if phases == 0 {
			phases = 1
		}
		cont := "no"
		if c.Continuous {
			cont = "yes"
		}
		cells := []string{
			c.Name,
			fmt.Sprintf("%g", c.Voltage),
			fmt.Sprintf("%g", c.Amps),
			fmt.Sprintf("%d", phases),
			c.Phase,
			cont,
			render.Commas(c.VA, 0),
		}
		for i, v := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeChartPage(pdf *gofpdf.Fpdf, tr func(string) string, res *audit.V3Result) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(200, 0, 0)
	pdf.CellFormat(0, 8, "HOSPITAL NODE THERMAL SIGNATURE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "N+1 Redundancy + Manual J Enforced", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	yMax := chartScale(res)
	bottom := chartTop + chartHeight
	yOf := func(v float64) float64 { return bottom - v/yMax*chartHeight }

	// grid and y-axis labels at fifths of the scale
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(colorGrid.r, colorGrid.g, colorGrid.b)
	for i := 0; i <= 5; i++ {
		v := yMax * float64(i) / 5
		y := yOf(v)
		pdf.Line(chartLeft, y, chartLeft+chartWidth, y)
		pdf.SetXY(chartLeft-22, y-2)
		pdf.CellFormat(20, 4, render.Commas(v, 0), "", 0, "R", false, 0, "")
	}

	n := len(res.Circuits)
	if n == 0 {
		return
	}
	slot := chartWidth / float64(n)
	barWidth := slot * (1 - barGapRatio)
	for i, c := range res.Circuits {
		fill := colorCircuit
		if c.Critical {
			fill = colorCritical
		}
		x := chartLeft + float64(i)*slot + (slot-barWidth)/2
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		pdf.Rect(x, yOf(c.VA), barWidth, c.VA/yMax*chartHeight, "F")

		tick := x + barWidth/2
		pdf.TransformBegin()
		pdf.TransformRotate(-45, tick, bottom+3)
		pdf.Text(tick, bottom+3, tr(c.Name))
		pdf.TransformEnd()
	}

	pdf.SetLineWidth(0.8)
	pdf.SetDashPattern([]float64{3, 2}, 0)
	pdf.SetDrawColor(colorCeiling.r, colorCeiling.g, colorCeiling.b)
	pdf.Line(chartLeft, yOf(res.SelectedCapacityVA), chartLeft+chartWidth, yOf(res.SelectedCapacityVA))
	if res.HVAC != nil {
		pdf.SetLineWidth(0.5)
		pdf.SetDashPattern([]float64{1, 1}, 0)
		pdf.SetDrawColor(colorCooling.r, colorCooling.g, colorCooling.b)
		cooling := res.TotalVA + res.HVAC.CoolingVA
		pdf.Line(chartLeft, yOf(cooling), chartLeft+chartWidth, yOf(cooling))
	}
	pdf.SetDashPattern([]float64{}, 0)

	// legend
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(chartLeft+chartWidth-70, chartTop-6)
	pdf.CellFormat(70, 4, "gold dashed: N+1 REDUNDANCY CEILING", "", 2, "R", false, 0, "")
	if res.HVAC != nil {
		pdf.CellFormat(70, 4, fmt.Sprintf("cyan dotted: + Cooling (%s VA)", render.Commas(res.HVAC.CoolingVA, 0)), "", 2, "R", false, 0, "")
	}
	pdf.SetXY(chartLeft, bottom+35)
	pdf.CellFormat(chartWidth, 5, "Circuit", "", 0, "C", false, 0, "")
}

// chartScale returns the y-axis maximum: the tallest of the bars, the N+1
// ceiling and the cooling line, with 10% headroom.
func chartScale(res *audit.V3Result) float64 {
	top := max(res.MaxUnitVA, res.SelectedCapacityVA)
	if res.HVAC != nil {
		top = max(top, res.TotalVA+res.HVAC.CoolingVA)
	}
	if top <= 0 {
		return 1
	}
	return top * 1.1
}
