package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pvershinin/trustgate/internal/model"
)

// Renderer writes aggregate reports to files and prints batch summaries
type Renderer struct {
	includeDetails bool
}

// NewRenderer creates a renderer
func NewRenderer(includeDetails bool) *Renderer {
	return &Renderer{includeDetails: includeDetails}
}

// WriteJSON writes the report as indented JSON. Details are stripped
// when not configured.
func (r *Renderer) WriteJSON(report *model.AggregateReport, path string) error {
	out := *report
	if !r.includeDetails {
		out.Details = nil
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// PrintSummary prints the aggregate counts and, per rejected or
// conditional record, its position and findings
func (r *Renderer) PrintSummary(w io.Writer, report *model.AggregateReport) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  Verification Summary\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Total:     %d\n", report.Total)
	fmt.Fprintf(w, "  Passed:    %d\n", report.Passed)
	fmt.Fprintf(w, "  Failed:    %d\n", report.Failed)
	fmt.Fprintf(w, "  Pass rate: %s\n", report.PassRate)
	fmt.Fprintf(w, "\n")

	if !r.includeDetails {
		return
	}

	for i, verdict := range report.Details {
		if verdict.Level == model.LevelA {
			continue
		}
		fmt.Fprintf(w, "  record %d: %s\n", i, verdict.Level)
		for _, e := range verdict.Errors {
			fmt.Fprintf(w, "    error:   %s\n", e)
		}
		for _, warning := range verdict.Warnings {
			fmt.Fprintf(w, "    warning: %s\n", warning)
		}
	}
}
