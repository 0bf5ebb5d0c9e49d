package detect

import (
	"strings"

	"github.com/pvershinin/trustgate/internal/model"
)

// CheckRequiredFields verifies field completeness on a generic record.
// A record carrying a category field is treated as a brand case and must
// name itself, its region and its category. A titled record whose
// category marks it as a policy must cite a document number or a source
// URL.
func CheckRequiredFields(record model.Record) Findings {
	var findings Findings

	if record.Has("category") {
		for _, field := range []string{"name", "region", "category"} {
			if record.Str(field) == "" {
				findings.Errors = append(findings.Errors, "missing required field: "+field)
			}
		}
	}

	if record.Has("title") {
		category := strings.ToLower(record.Str("category"))
		isPolicy := strings.Contains(category, "policy") || strings.Contains(category, "政策")
		if isPolicy && record.Str("doc_number") == "" && record.Str("source_url") == "" {
			findings.Errors = append(findings.Errors,
				"policy record requires a document number or source URL")
		}
	}

	return findings
}
