// Package collectors defines the host snapshot model shared by the
// collector and the renderer, together with the fallback literals used
// when an individual fact cannot be determined.
package collectors

import (
	"context"
	"time"
)

// Collector gathers a single SystemSnapshot. Implementations never fail:
// every sub-query that cannot be answered is replaced by its fallback
// value and reported as a warning instead.
type Collector interface {
	// Collect queries the host once and returns the result. The returned
	// result is never nil.
	Collect(ctx context.Context) *CollectResult
}

// CollectResult holds the output of a collection run.
type CollectResult struct {
	// Timestamp records when the collection completed.
	Timestamp time.Time `json:"timestamp"`

	// Snapshot is the immutable capture of host facts.
	Snapshot SystemSnapshot `json:"snapshot"`

	// Warnings lists the facts that degraded to a fallback value and why.
	Warnings []string `json:"warnings,omitempty"`
}

// Degraded reports whether any fact fell back to a placeholder.
func (r *CollectResult) Degraded() bool {
	return len(r.Warnings) > 0
}
