package detect

import (
	"strings"

	"github.com/pvershinin/trustgate/internal/model"
)

// CheckSources verifies that a record carries any source information at
// all. Absence is a warning, not an error: sparse records pass through
// flagged for review. A present but malformed source URL is fatal.
func CheckSources(record model.Record) Findings {
	var findings Findings

	hasSource := record.Str("source_url") != "" ||
		len(record.Sources()) > 0 ||
		record.Str("type") == "real_brand" ||
		record.Truthy("verified")

	if !hasSource {
		findings.Warnings = append(findings.Warnings, "missing source information")
	}

	if sourceURL := record.Str("source_url"); sourceURL != "" {
		if !strings.HasPrefix(sourceURL, "http://") && !strings.HasPrefix(sourceURL, "https://") {
			findings.Errors = append(findings.Errors, "malformed source URL")
		}
	}

	return findings
}
