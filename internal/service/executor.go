package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/domain/model"
	"github.com/opsarc/jobdeck/internal/observability/metrics"
	"github.com/opsarc/jobdeck/internal/observability/statsd"
)

// resultSummaries maps each job type to a JMESPath expression evaluated over
// the fetched payload for the completion log line.
var resultSummaries = map[model.JobType]string{
	model.JobTypeWeather:   "current.temperature_2m",
	model.JobTypeCountries: "[0].name.common",
}

// Executor drives one job record through validation and fetch, handing the
// terminal outcome to the store. Observers only ever see scheduled or a
// terminal status; the store performs each transition atomically.
type Executor struct {
	store    core.JobStore
	registry *Registry
	log      *slog.Logger
	metrics  statsd.Sink
}

// ExecutorOptions groups dependencies for NewExecutor.
type ExecutorOptions struct {
	Store    core.JobStore
	Registry *Registry
	Logger   *slog.Logger // Optional
	Metrics  statsd.Sink  // Optional
}

// NewExecutor constructs the job executor.
func NewExecutor(opts ExecutorOptions) *Executor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		store:    opts.Store,
		registry: opts.Registry,
		log:      logger.With("component", "executor"),
		metrics:  opts.Metrics,
	}
}

// Execute runs the validate -> fetch -> terminal-status pipeline for one
// job. Execution errors never propagate to the submitter; they resolve into
// a failed status and a log line.
func (e *Executor) Execute(ctx context.Context, jobID string) {
	start := time.Now()

	job, err := e.store.Get(ctx, jobID)
	if err != nil {
		e.log.ErrorContext(ctx, "job lookup failed", "id", jobID, "error", err)
		return
	}

	e.log.InfoContext(ctx, "executing job", "id", job.ID, "name", job.Name, "type", job.Type)

	svc := e.registry.Get(job.Type)
	if svc == nil {
		e.failJob(ctx, job, start, fmt.Errorf("unknown service type %q", job.Type))
		return
	}

	validation := svc.Validate(job.Data)
	if !validation.Valid {
		e.failJob(ctx, job, start, fmt.Errorf("validation failed: %v", validation.Errors))
		return
	}

	e.log.DebugContext(ctx, "fetching data", "id", job.ID, "type", job.Type)
	payload, err := svc.FetchData(ctx, validation.Processed)
	if err != nil {
		e.failJob(ctx, job, start, fmt.Errorf("fetch data: %w", err))
		return
	}

	if err := e.store.Complete(ctx, job.ID, payload); err != nil {
		e.log.ErrorContext(ctx, "job completion failed", "id", job.ID, "error", err)
		return
	}

	metrics.EmitJobLifecycle(e.metrics, metrics.JobMetric{
		JobType:  string(job.Type),
		Outcome:  metrics.OutcomeCompleted,
		Duration: time.Since(start),
	})
	e.log.InfoContext(ctx, "job completed", "id", job.ID,
		"result_summary", summarize(job.Type, payload))
}

func (e *Executor) failJob(ctx context.Context, job *model.Job, start time.Time, cause error) {
	e.log.ErrorContext(ctx, "job failed", "id", job.ID, "type", job.Type, "error", cause)

	if err := e.store.Fail(ctx, job.ID); err != nil {
		e.log.ErrorContext(ctx, "job failure transition failed", "id", job.ID, "error", err)
		return
	}

	metrics.EmitJobLifecycle(e.metrics, metrics.JobMetric{
		JobType:  string(job.Type),
		Outcome:  metrics.OutcomeFailed,
		Duration: time.Since(start),
		Err:      cause,
	})
}

// summarize extracts a short, type-specific value from the fetched payload
// for logging. Missing expressions or unexpected payload shapes degrade to
// an empty summary.
func summarize(jobType model.JobType, payload json.RawMessage) string {
	expr, ok := resultSummaries[jobType]
	if !ok || len(payload) == 0 {
		return ""
	}

	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return ""
	}

	v, err := jmespath.Search(expr, decoded)
	if err != nil || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
