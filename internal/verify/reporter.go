package verify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pvershinin/trustgate/internal/model"
)

const summaryMaxChars = 100

// Reporter accumulates verification outcomes for one batch run and
// produces the aggregate pass/fail summary. Construct one per batch and
// inject it; there is no process-wide instance. The mutex lets a
// parallel batch share a single reporter.
type Reporter struct {
	mu      sync.Mutex
	entries []model.ReportEntry
}

// NewReporter creates an empty reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// Add appends a timestamped entry with a bounded preview of the record
func (r *Reporter) Add(record model.Record, verdict model.Verdict) {
	entry := model.ReportEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Summary:   truncate(record.Serialized(), summaryMaxChars),
		Verdict:   verdict,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// Len returns the number of recorded entries
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Entries returns a copy of the recorded entries in insertion order
func (r *Reporter) Entries() []model.ReportEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Summarize computes the aggregate report. Details match insertion
// order; the pass rate is formatted to one decimal percent and defined
// as "0%" for an empty batch.
func (r *Reporter) Summarize() model.AggregateReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := len(r.entries)
	passed := 0
	details := make([]model.Verdict, total)
	for i, entry := range r.entries {
		details[i] = entry.Verdict
		if entry.Verdict.IsValid {
			passed++
		}
	}

	passRate := "0%"
	if total > 0 {
		passRate = fmt.Sprintf("%.1f%%", float64(passed)/float64(total)*100)
	}

	return model.AggregateReport{
		Total:       total,
		Passed:      passed,
		Failed:      total - passed,
		PassRate:    passRate,
		Details:     details,
		GeneratedAt: time.Now().UTC(),
	}
}
