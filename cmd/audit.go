package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sovereign-circuit/loadaudit/calc/audit"
	"github.com/sovereign-circuit/loadaudit/calc/circuit"
	"github.com/sovereign-circuit/loadaudit/calc/report"
)

// sampleSquareFeet is the floor area of the bundled v3 hospital node.
const sampleSquareFeet = 12500

// artifactPrefix names auto-generated report files.
const artifactPrefix = "thermal_signature_hospital"

var validAuditVersions = map[int]bool{2: true, 3: true}

var (
	auditCircuitsPath string
	auditSample       string
	auditVersion      int
	auditSquareFeet   float64
	auditClimateZone  string
	auditPDFPath      string
	auditXLSXPath     string
	auditJSON         bool
	auditTitle        string
	auditProject      string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a panel schedule for load, phase balance and redundancy",
	Long: "Audit a panel schedule (YAML, CSV or XLSX) or a bundled sample.\n" +
		"Version 2 reports total kVA, A/B/C phase balance and the NEC 517 N+1 check.\n" +
		"Version 3 sizes redundant capacity, estimates HVAC load and can export PDF/XLSX reports.",
	Run: func(cmd *cobra.Command, args []string) {
		if !validAuditVersions[auditVersion] {
			logrus.Fatalf("Unknown audit version %d; valid: 2, 3", auditVersion)
		}
		cfg := mustLoadDefaults()

		fallback := "hospital-v3"
		if auditVersion == 2 {
			fallback = "hospital-v2"
		}
		s, err := resolveSchedule(auditCircuitsPath, auditSample, fallback)
		if err != nil {
			logrus.Fatalf("Failed to load panel schedule: %v", err)
		}
		logrus.Infof("auditing %d circuits from %q (v%d)", len(s.Circuits), s.Panel, auditVersion)

		if auditVersion == 2 {
			if auditPDFPath != "" || auditXLSXPath != "" {
				logrus.Fatalf("--pdf and --xlsx require --version 3")
			}
			if err := runAuditV2(os.Stdout, s.Circuits, cfg); err != nil {
				logrus.Fatalf("Audit failed: %v", err)
			}
			return
		}

		sqFt := v3SquareFeet(auditCircuitsPath, auditSample, auditSquareFeet, cmd.Flags().Changed("sq-ft"))
		res, err := audit.AuditV3(s.Circuits, audit.V3Options{
			SquareFeet:       sqFt,
			ClimateZone:      auditClimateZone,
			Keywords:         cfg.CriticalKeywords.V3,
			ClimateFactors:   cfg.ClimateZones,
			CoolingVAPerSqFt: cfg.CoolingVAPerSqFt,
		})
		if err != nil {
			logrus.Fatalf("Audit failed: %v", err)
		}

		if auditJSON {
			if err := writeJSON(os.Stdout, res); err != nil {
				logrus.Fatalf("%v", err)
			}
		} else {
			res.Print(os.Stdout)
		}

		if err := exportAudit(res, report.NewMeta(auditTitle, auditProject), time.Now()); err != nil {
			logrus.Fatalf("Report export failed: %v", err)
		}
	},
}

// v3SquareFeet returns the HVAC floor area for a v3 audit. The bundled v3
// sample brings its own area unless --sq-ft was given; schedules loaded from
// a file never do, whatever their panel name.
func v3SquareFeet(circuitsPath, sample string, sqFt float64, sqFtChanged bool) float64 {
	if sqFtChanged || circuitsPath != "" {
		return sqFt
	}
	if sample == "" || sample == "hospital-v3" {
		return sampleSquareFeet
	}
	return sqFt
}

// auditV2Output is the JSON shape of a v2 audit.
type auditV2Output struct {
	Audit      *audit.V2Result        `json:"audit"`
	Redundancy audit.RedundancyResult `json:"redundancy"`
}

// runAuditV2 prints the v2 load audit followed by the N+1 redundancy check.
func runAuditV2(w io.Writer, circuits []circuit.Circuit, cfg Config) error {
	res, err := audit.AuditV2(circuits)
	if err != nil {
		return err
	}
	red := audit.CheckNPlusOne(circuits, cfg.CriticalKeywords.V2)

	if auditJSON {
		return writeJSON(w, auditV2Output{Audit: res, Redundancy: red})
	}
	res.Print(w)
	red.Print(w)
	return nil
}

// exportAudit writes the PDF and XLSX reports requested on the command line.
// A flag given without a path gets a timestamped name in the working directory.
func exportAudit(res *audit.V3Result, meta report.Meta, now time.Time) error {
	exports := []struct {
		path  string
		ext   string
		write func(io.Writer) error
	}{
		{auditPDFPath, "pdf", func(w io.Writer) error { return report.WriteAuditPDF(w, res, meta) }},
		{auditXLSXPath, "xlsx", func(w io.Writer) error { return report.WriteAuditXLSX(w, res, meta) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		path := e.path
		if path == autoArtifact {
			path = report.DefaultArtifactName(artifactPrefix, e.ext, now)
		}
		if err := writeArtifact(path, e.write); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved: %s\n", path)
	}
	return nil
}

func init() {
	auditCmd.Flags().StringVar(&auditCircuitsPath, "circuits", "", "Path to a panel schedule (.yaml, .yml, .csv, .xlsx)")
	auditCmd.Flags().StringVar(&auditSample, "sample", "", "Bundled sample schedule (hospital-v2, hospital-v3); default matches --version")
	auditCmd.Flags().IntVar(&auditVersion, "version", 3, "Auditor version (2, 3)")
	auditCmd.Flags().Float64Var(&auditSquareFeet, "sq-ft", 0, "Building area for the v3 HVAC estimate (0 skips it; the v3 sample uses 12500)")
	auditCmd.Flags().StringVar(&auditClimateZone, "climate-zone", audit.DefaultClimateZone, "Climate zone for the v3 heating factor")
	auditCmd.Flags().StringVar(&auditPDFPath, "pdf", "", "Write a PDF report (--pdf=path, or --pdf for a timestamped name)")
	auditCmd.Flags().StringVar(&auditXLSXPath, "xlsx", "", "Write an XLSX workbook (--xlsx=path, or --xlsx for a timestamped name)")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Print the result as JSON")
	auditCmd.Flags().StringVar(&auditTitle, "title", report.DefaultTitle, "Report title")
	auditCmd.Flags().StringVar(&auditProject, "project", "", "Project name printed on the report")
	auditCmd.Flags().Lookup("pdf").NoOptDefVal = autoArtifact
	auditCmd.Flags().Lookup("xlsx").NoOptDefVal = autoArtifact

	rootCmd.AddCommand(auditCmd)
}
