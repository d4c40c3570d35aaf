// Package report renders audit results into files: a PDF with the thermal
// signature chart and an XLSX circuit schedule. It depends on audit results
// only; it never recomputes loads.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle heads reports when no title is given.
const DefaultTitle = "Hospital Node Load Audit"

// Meta identifies one generated report.
type Meta struct {
	ID          string
	Title       string
	Project     string
	GeneratedAt time.Time
}

// NewMeta stamps a fresh report ID and the current time.
func NewMeta(title, project string) Meta {
	if title == "" {
		title = DefaultTitle
	}
	return Meta{
		ID:          uuid.NewString(),
		Title:       title,
		Project:     project,
		GeneratedAt: time.Now(),
	}
}

// DefaultArtifactName returns prefix_YYYYMMDD_HHMMSS.ext for t.
func DefaultArtifactName(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format("20060102_150405"), ext)
}
