package model

// Tier is the coarse credibility rank of a source's hosting domain.
// A is best; unknown domains land in D.
type Tier string

const (
	TierA Tier = "A" // Official commerce platforms, government sites
	TierB Tier = "B" // Established media and portals
	TierC Tier = "C" // Social / UGC platforms
	TierD Tier = "D" // Unknown origin
)

// Level is the tri-state outcome of verification
type Level string

const (
	LevelA           Level = "A"           // No errors, no warnings
	LevelConditional Level = "CONDITIONAL" // Warnings only
	LevelRejected    Level = "REJECTED"    // At least one error
)

// DeriveLevel maps error/warning lists to a verdict level. This is the
// single place the level invariants are encoded: REJECTED iff any error,
// A iff completely clean, CONDITIONAL otherwise.
func DeriveLevel(errors, warnings []string) Level {
	switch {
	case len(errors) > 0:
		return LevelRejected
	case len(warnings) > 0:
		return LevelConditional
	default:
		return LevelA
	}
}

// Named checks produced by cross validation
const (
	CheckSourceCount    = "source_count"
	CheckIndependence   = "independence"
	CheckCredibleSource = "has_credible_source"
	CheckNotTemplate    = "not_template"
	CheckDocNumber      = "has_doc_number"
	CheckSourceURL      = "has_source_url"
	CheckGovSource      = "is_gov_source"
)

// IndependenceResult reports whether a source set spans distinct domains
type IndependenceResult struct {
	IsIndependent bool     `json:"is_independent"`
	UniqueDomains []string `json:"unique_domains"` // Sorted for determinism
	TotalSources  int      `json:"total_sources"`
}

// Verdict is the outcome of validating one record. It is attached to the
// record as metadata, never merged into its domain fields.
type Verdict struct {
	IsValid      bool                `json:"is_valid"`
	Checks       map[string]bool     `json:"checks,omitempty"`
	Errors       []string            `json:"errors"`
	Warnings     []string            `json:"warnings"`
	Level        Level               `json:"level"`
	Independence *IndependenceResult `json:"independence,omitempty"`
	Tiers        []Tier              `json:"credibility,omitempty"` // Per-source, input order
}

// SetCheck records a named check outcome
func (v *Verdict) SetCheck(name string, ok bool) {
	if v.Checks == nil {
		v.Checks = make(map[string]bool)
	}
	v.Checks[name] = ok
}

// Finalize recomputes IsValid and Level from the collected errors and
// warnings so the level invariants hold by construction
func (v *Verdict) Finalize() {
	v.IsValid = len(v.Errors) == 0
	v.Level = DeriveLevel(v.Errors, v.Warnings)
}

// Merge combines another verdict into this one: checks union, errors and
// warnings appended, domain analysis kept from whichever side has it.
// The result is re-finalized, so a fatal error on either side rejects.
func (v Verdict) Merge(other Verdict) Verdict {
	out := v
	if len(other.Checks) > 0 {
		merged := make(map[string]bool, len(v.Checks)+len(other.Checks))
		for name, ok := range v.Checks {
			merged[name] = ok
		}
		for name, ok := range other.Checks {
			merged[name] = ok
		}
		out.Checks = merged
	}
	out.Errors = append(append([]string{}, v.Errors...), other.Errors...)
	out.Warnings = append(append([]string{}, v.Warnings...), other.Warnings...)
	if out.Independence == nil {
		out.Independence = other.Independence
	}
	if len(out.Tiers) == 0 {
		out.Tiers = other.Tiers
	}
	out.Finalize()
	return out
}
