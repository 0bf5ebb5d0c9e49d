package model

import "time"

// ReportEntry is one logged verification outcome
type ReportEntry struct {
	ID        string    `json:"id"`        // Batch-unique entry ID
	Timestamp time.Time `json:"timestamp"` // When the verdict was recorded
	Summary   string    `json:"summary"`   // Bounded preview of the record
	Verdict   Verdict   `json:"verdict"`
}

// AggregateReport summarizes a batch of verification outcomes.
// Details preserves input order so consumers can correlate entries
// positionally with the records they submitted.
type AggregateReport struct {
	Total       int       `json:"total"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	PassRate    string    `json:"pass_rate"` // One-decimal percent, "0%" when empty
	Details     []Verdict `json:"details,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
