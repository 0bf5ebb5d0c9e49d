package detect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pvershinin/trustgate/internal/model"
)

// Findings collects the outcome of a content scan. Errors are fatal to
// verification; warnings annotate but never block.
type Findings struct {
	Errors   []string
	Warnings []string
}

// Merge appends another scan's findings
func (f *Findings) Merge(other Findings) {
	f.Errors = append(f.Errors, other.Errors...)
	f.Warnings = append(f.Warnings, other.Warnings...)
}

// Detector scans a record's textual content for signs of fabricated or
// templated data: placeholder phrases, hedging language, and quantitative
// claims with no source annotation. Matching is lexical, not semantic.
type Detector struct {
	rules model.HallucinationRules
}

// NewDetector creates a detector from the given rules
func NewDetector(rules *model.HallucinationRules) *Detector {
	if rules == nil {
		rules = &model.DefaultConfig().Rules.Hallucination
	}
	return &Detector{rules: *rules}
}

// Detect runs the three scans and concatenates their findings. Only the
// template-name scan produces errors; the other two downgrade to
// warnings so sparse records degrade instead of failing hard.
func (d *Detector) Detect(record model.Record) Findings {
	var findings Findings

	// 1. Template placeholders in the display name. Every matching
	// pattern is reported, not just the first.
	name := strings.ToLower(record.Name())
	for _, pattern := range d.rules.TemplatePatterns {
		if strings.Contains(name, strings.ToLower(pattern)) {
			findings.Errors = append(findings.Errors,
				fmt.Sprintf("suspected template/generated data: name contains %q", pattern))
		}
	}

	serialized := strings.ToLower(record.Serialized())

	// 2. Hedging language anywhere in the record
	for _, word := range d.rules.VagueWords {
		if strings.Contains(serialized, strings.ToLower(word)) {
			findings.Warnings = append(findings.Warnings,
				fmt.Sprintf("contains vague wording %q", word))
		}
	}

	// 3. Large-magnitude KPI values with no source annotation anywhere
	// in the record
	if kpi := record.KPI(); kpi != nil {
		sourced := false
		for _, marker := range d.rules.SourceMarkers {
			if strings.Contains(serialized, strings.ToLower(marker)) {
				sourced = true
				break
			}
		}
		if !sourced {
			keys := make([]string, 0, len(kpi))
			for key := range kpi {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				value, ok := kpi[key].(string)
				if !ok {
					continue
				}
				for _, marker := range d.rules.MagnitudeMarkers {
					if strings.Contains(strings.ToLower(value), strings.ToLower(marker)) {
						findings.Warnings = append(findings.Warnings,
							fmt.Sprintf("KPI %q missing source annotation", key))
						break
					}
				}
			}
		}
	}

	return findings
}
