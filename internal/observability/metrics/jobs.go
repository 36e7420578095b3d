// Package metrics standardises jobdeck's metric emission.
package metrics

import (
	"time"

	"github.com/opsarc/jobdeck/internal/observability/statsd"
)

// Outcome constants for metric tagging.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// JobMetric captures one job lifecycle event for metric emission.
type JobMetric struct {
	JobType  string
	Outcome  string
	Duration time.Duration
	Err      error
}

// EmitJobLifecycle emits the standard job transition count and duration.
// A nil sink is a no-op so callers never need to guard the emission.
func EmitJobLifecycle(sink statsd.Sink, in JobMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"job_type": in.JobType,
		"outcome":  in.Outcome,
	}

	sink.Count("job.transition", 1, tags)
	if in.Duration > 0 {
		sink.Timing("job.duration", in.Duration, tags)
	}
}
