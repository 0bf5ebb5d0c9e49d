package worker

import (
	"context"

	"github.com/pvershinin/trustgate/internal/model"
)

// Verifying is the subset of the verification middleware the batch
// processor needs
type Verifying interface {
	Verify(record model.Record) model.Verdict
}

// VerifyResult is the outcome of verifying one record in a batch
type VerifyResult struct {
	Index   int
	Record  model.Record
	Verdict model.Verdict
	Err     error
}

// GetError returns the job error, if any
func (r *VerifyResult) GetError() error {
	return r.Err
}

type verifyJob struct {
	index    int
	record   model.Record
	verifier Verifying
	throttle *Throttle
}

// Execute runs one record through the verifier. Each record's checks are
// independent of every other record, so jobs are safe to run in any
// order and in parallel.
func (j *verifyJob) Execute(ctx context.Context) Result {
	if err := j.throttle.Wait(ctx); err != nil {
		return &VerifyResult{Index: j.index, Record: j.record, Err: err}
	}
	return &VerifyResult{
		Index:   j.index,
		Record:  j.record,
		Verdict: j.verifier.Verify(j.record),
	}
}

// BatchVerifier verifies many records concurrently while preserving
// input order in the results, so report consumers can rely on positional
// correlation with the submitted batch.
type BatchVerifier struct {
	verifier    Verifying
	concurrency int
	throttle    *Throttle
}

// NewBatchVerifier creates a batch verifier. Throttle may be nil.
func NewBatchVerifier(verifier Verifying, concurrency int, throttle *Throttle) *BatchVerifier {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchVerifier{
		verifier:    verifier,
		concurrency: concurrency,
		throttle:    throttle,
	}
}

// Process verifies all records and returns results indexed by input
// position. Records that never ran (context cancelled mid-batch) carry
// the context error.
func (b *BatchVerifier) Process(ctx context.Context, records []model.Record) []*VerifyResult {
	out := make([]*VerifyResult, len(records))
	if len(records) == 0 {
		return out
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Propagate caller cancellation into the pool so queued jobs stop
	// and throttled jobs unblock
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	// Submit from a separate goroutine and drain results as they
	// arrive; submitting everything up front would block once the
	// queue and result buffers fill
	go func() {
		for i, record := range records {
			pool.Submit(&verifyJob{
				index:    i,
				record:   record,
				verifier: b.verifier,
				throttle: b.throttle,
			})
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		vr := result.(*VerifyResult)
		out[vr.Index] = vr
	}

	// Fill any slot whose job never produced a result
	for i, vr := range out {
		if vr == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			out[i] = &VerifyResult{Index: i, Record: records[i], Err: err}
		}
	}

	return out
}
