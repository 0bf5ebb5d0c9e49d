package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/pvershinin/trustgate/internal/cache"
	"github.com/pvershinin/trustgate/internal/model"
	"github.com/pvershinin/trustgate/internal/validate"
	"github.com/pvershinin/trustgate/internal/verify"
	"github.com/pvershinin/trustgate/internal/worker"
)

// EntityType selects which cross-validation rules apply to a record
type EntityType string

const (
	EntityAuto   EntityType = "auto"
	EntityBrand  EntityType = "brand"
	EntityPolicy EntityType = "policy"
	// EntityGeneric records get content-level verification only; cross
	// validation needs an entity type to pick its rules
	EntityGeneric EntityType = "generic"
)

// ParseEntityType validates a CLI-supplied entity type
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(strings.ToLower(s)) {
	case EntityAuto, "":
		return EntityAuto, nil
	case EntityBrand:
		return EntityBrand, nil
	case EntityPolicy:
		return EntityPolicy, nil
	case EntityGeneric:
		return EntityGeneric, nil
	default:
		return "", fmt.Errorf("unknown entity type %q (want brand, policy, generic or auto)", s)
	}
}

// DetectEntityType guesses the entity type from a record's shape: titled
// records with a policy category or document number are policies,
// records carrying a source list are brand cases, anything else is
// generic and only gets content-level verification.
func DetectEntityType(record model.Record) EntityType {
	if record.Has("title") {
		category := strings.ToLower(record.Str("category"))
		if strings.Contains(category, "policy") || strings.Contains(category, "政策") ||
			record.Has("doc_number") {
			return EntityPolicy
		}
	}
	if record.Has("sources") {
		return EntityBrand
	}
	return EntityGeneric
}

// Pipeline wires the cross validator, the verification middleware, the
// batch worker and the reporter into one pass over a set of records.
// Records flow through the content-level middleware always, and through
// the entity-typed cross validator when a type applies; both verdicts
// are merged into the one attached to the record.
type Pipeline struct {
	cross    *validate.CrossValidator
	verifier *verify.Verifier
	batch    *worker.BatchVerifier
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	verifier := verify.NewVerifier(cfg, store)
	throttle := worker.NewThrottle(cfg.Concurrency.RatePerSecond, cfg.Concurrency.Burst)

	return &Pipeline{
		cross:    validate.NewCrossValidator(&cfg.Rules),
		verifier: verifier,
		batch:    worker.NewBatchVerifier(verifier, cfg.Concurrency.Workers, throttle),
		config:   cfg,
	}
}

// Verifier exposes the middleware for callers that want to Guard their
// own producing operations
func (p *Pipeline) Verifier() *verify.Verifier {
	return p.verifier
}

// Run verifies all records and returns the aggregate report. Content
// checks run concurrently; verdicts are reported strictly in input
// order regardless of completion order.
func (p *Pipeline) Run(ctx context.Context, records []model.Record, entity EntityType) (*model.AggregateReport, error) {
	results := p.batch.Process(ctx, records)
	reporter := verify.NewReporter()

	for _, result := range results {
		if result.Err != nil {
			return nil, fmt.Errorf("verify record %d: %w", result.Index, result.Err)
		}

		verdict := result.Verdict

		kind := entity
		if kind == EntityAuto {
			kind = DetectEntityType(result.Record)
		}
		switch kind {
		case EntityBrand:
			verdict = verdict.Merge(p.cross.ValidateBrand(result.Record.Name(), result.Record.Sources()))
		case EntityPolicy:
			verdict = verdict.Merge(p.cross.ValidatePolicy(result.Record))
		}

		reporter.Add(result.Record, verdict)
	}

	report := reporter.Summarize()
	return &report, nil
}
