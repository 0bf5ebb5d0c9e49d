package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pvershinin/trustgate/internal/cache"
	"github.com/pvershinin/trustgate/internal/detect"
	"github.com/pvershinin/trustgate/internal/model"
)

// Status tags a record that passed through the gate
type Status string

const (
	StatusVerified Status = "VERIFIED" // Verdict level A or CONDITIONAL
	StatusPending  Status = "PENDING"  // Rejected but passed through in permissive mode
)

// VerificationError is raised by the gating wrapper in strict mode when a
// record is rejected. It carries the full error list and a bounded
// preview of the offending record; the caller never receives the record
// itself.
type VerificationError struct {
	Errors  []string
	Preview string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("record failed verification: %s (data: %s)",
		strings.Join(e.Errors, "; "), e.Preview)
}

// Checked is a record annotated with its verdict. The record's domain
// fields are exactly as produced; the verdict rides alongside.
type Checked struct {
	Record    model.Record  `json:"record"`
	Verdict   model.Verdict `json:"verdict"`
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// Producer is any operation yielding a record, e.g. a research or fetch
// stage supplied by the caller
type Producer func(ctx context.Context) (model.Record, error)

// Verifier is the content-level verification middleware. It runs the
// hallucination, field-completeness and source-presence checks over a
// record and derives an overall verdict level. All checks are total:
// missing optional fields downgrade to warnings, never panic or error.
type Verifier struct {
	detector     *detect.Detector
	store        cache.Cache // nil disables memoization
	cacheTTL     time.Duration
	strict       bool
	previewBytes int
}

// NewVerifier creates a verifier from config. Pass a nil store to
// disable verdict memoization regardless of config.
func NewVerifier(cfg *model.Config, store cache.Cache) *Verifier {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if !cfg.Cache.Enabled {
		store = nil
	}
	previewBytes := cfg.Verification.PreviewBytes
	if previewBytes <= 0 {
		previewBytes = 200
	}
	return &Verifier{
		detector:     detect.NewDetector(&cfg.Rules.Hallucination),
		store:        store,
		cacheTTL:     cfg.Cache.TTL,
		strict:       cfg.Verification.Strict,
		previewBytes: previewBytes,
	}
}

// Strict reports the active gating policy
func (v *Verifier) Strict() bool { return v.strict }

// Verify runs all content checks and derives the verdict. Deterministic
// and idempotent: the record is never mutated, so re-running over the
// same record yields an identical verdict.
func (v *Verifier) Verify(record model.Record) model.Verdict {
	serialized := record.Serialized()

	key := ""
	if v.store != nil {
		key = cache.Key([]byte(serialized))
		if data, ok := v.store.Get(key); ok {
			var cached model.Verdict
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	findings := v.detector.Detect(record)

	// Field completeness only applies to named records; bare fragments
	// are judged on content and sources alone
	if record.Has("name") || record.Has("title") {
		findings.Merge(detect.CheckRequiredFields(record))
	}

	findings.Merge(detect.CheckSources(record))

	verdict := model.Verdict{
		Errors:   findings.Errors,
		Warnings: findings.Warnings,
	}
	verdict.Finalize()

	if v.store != nil {
		if data, err := json.Marshal(verdict); err == nil {
			_ = v.store.Set(key, data, v.cacheTTL)
		}
	}

	return verdict
}

// Guard wraps a producing operation with post-verification. The wrapped
// operation has the same input contract; its output is either a Checked
// record or, under the strict policy, a *VerificationError for any
// rejected record. Under the permissive policy rejected records are
// returned tagged PENDING for manual review and no call ever fails on
// verification grounds.
func (v *Verifier) Guard(produce Producer) func(ctx context.Context) (*Checked, error) {
	return func(ctx context.Context) (*Checked, error) {
		record, err := produce(ctx)
		if err != nil {
			return nil, err
		}

		verdict := v.Verify(record)
		checked := &Checked{
			Record:    record,
			Verdict:   verdict,
			Timestamp: time.Now().UTC(),
		}

		if verdict.Level == model.LevelRejected {
			if v.strict {
				return nil, &VerificationError{
					Errors:  verdict.Errors,
					Preview: truncate(record.Serialized(), v.previewBytes),
				}
			}
			checked.Status = StatusPending
			return checked, nil
		}

		checked.Status = StatusVerified
		return checked, nil
	}
}

// truncate bounds s to n characters, respecting rune boundaries
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
