package metrics

import (
	"sync"
	"time"
)

type collectionStats struct {
	ops             int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store calls and
// domain operations. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*collectionStats

	balanceRuns  int
	scoreUpdates map[string]int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:        make(map[string]*collectionStats),
		scoreUpdates: make(map[string]int),
		otel:         otel,
	}
}

// RecordStoreOp increments counters for one document-store operation and
// stores the last observed latency for the collection.
func (r *Recorder) RecordStoreOp(collection, op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(collection)
	stats.ops++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOp(collection, op, duration, err)
	}
}

// RecordBalanceRun counts one team generation run.
func (r *Recorder) RecordBalanceRun(teamCount int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.balanceRuns++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBalanceRun(teamCount, duration, err)
	}
}

// RecordScoreUpdate counts one score mutation by outcome (applied, dropped
// by the single-flight guard, or failed).
func (r *Recorder) RecordScoreUpdate(outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.scoreUpdates[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScoreUpdate(outcome)
	}
}

// RecordHTTPRequest forwards request metrics to the otel instruments.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// StoreOps returns the operation count recorded for a collection.
func (r *Recorder) StoreOps(collection string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[collection]; ok {
		return stats.ops
	}
	return 0
}

// StoreErrors returns the error count recorded for a collection.
func (r *Recorder) StoreErrors(collection string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[collection]; ok {
		return stats.errors
	}
	return 0
}

// BalanceRuns returns the number of recorded team generation runs.
func (r *Recorder) BalanceRuns() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balanceRuns
}

// ScoreUpdates returns the count recorded for an outcome.
func (r *Recorder) ScoreUpdates(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scoreUpdates[outcome]
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(collection string) *collectionStats {
	stats, ok := r.stats[collection]
	if !ok {
		stats = &collectionStats{}
		r.stats[collection] = stats
	}
	return stats
}
