package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/data"
	"github.com/opsarc/jobdeck/internal/domain/model"
	"github.com/opsarc/jobdeck/internal/errors"
)

const missingFieldsMessage = "Missing required fields: name, scheduledDate, tenantId, type and data are required"

// Scheduler accepts job submissions, creates the job record, and dispatches
// execution: immediately when the scheduled time is not in the future,
// otherwise through a one-shot timer. Timers are tracked so Drain can stop
// pending ones and wait for in-flight executions on shutdown.
type Scheduler struct {
	store    core.JobStore
	registry *Registry
	executor *Executor
	clock    data.Clock
	log      *slog.Logger

	mu       sync.Mutex
	timers   map[string]*time.Timer
	draining bool
	inflight sync.WaitGroup
}

// SchedulerOptions groups dependencies for NewScheduler.
type SchedulerOptions struct {
	Store    core.JobStore
	Registry *Registry
	Executor *Executor
	Clock    data.Clock   // Optional: defaults to RealClock
	Logger   *slog.Logger // Optional
}

// NewScheduler constructs the submission scheduler.
func NewScheduler(opts SchedulerOptions) *Scheduler {
	clock := opts.Clock
	if clock == nil {
		clock = data.RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		store:    opts.Store,
		registry: opts.Registry,
		executor: opts.Executor,
		clock:    clock,
		log:      logger.With("component", "scheduler"),
		timers:   make(map[string]*time.Timer),
	}
}

// Submit validates the request structurally, resolves its job type, runs the
// per-type validation, creates the job record, and enqueues execution.
// Validation failures come back as errors.AppError with code validation.
func (s *Scheduler) Submit(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req.Name == "" || req.ScheduledDate == "" || req.TenantID == "" ||
		req.Type == "" || !req.HasData() {
		return nil, errors.Validation(missingFieldsMessage)
	}

	scheduledAt, err := parseScheduledDate(req.ScheduledDate)
	if err != nil {
		return nil, errors.Validationf("scheduledDate must be a valid ISO-8601 timestamp: %q", req.ScheduledDate)
	}

	svc := s.registry.Get(req.Type)
	if svc == nil {
		return nil, errors.Validationf("Invalid job type %q. Available types: %s",
			string(req.Type), joinTypes(s.registry.AvailableTypes()))
	}

	if validation := svc.Validate(req.Data); !validation.Valid {
		return nil, errors.ValidationDetails("Validation failed", validation.Errors)
	}

	job, err := s.store.Create(ctx, model.NewJobParams{
		Name:          req.Name,
		Type:          req.Type,
		TenantID:      req.TenantID,
		ScheduledDate: scheduledAt,
		Data:          req.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("create job record: %w", err)
	}

	s.enqueue(job.ID, scheduledAt)
	return job, nil
}

// enqueue dispatches execution now or arms a one-shot timer for later.
func (s *Scheduler) enqueue(jobID string, scheduledAt time.Time) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draining {
		// Shutdown already began; the record stays scheduled.
		s.log.Warn("submission during drain, leaving job scheduled", "id", jobID)
		return
	}

	if !scheduledAt.After(now) {
		s.log.Info("job scheduled for past date, executing immediately", "id", jobID)
		s.inflight.Add(1)
		go s.run(jobID)
		return
	}

	delay := scheduledAt.Sub(now)
	s.log.Info("job scheduled for future execution", "id", jobID, "delay", delay)
	s.timers[jobID] = time.AfterFunc(delay, func() {
		s.fire(jobID)
	})
}

// fire is the timer callback for a deferred job.
func (s *Scheduler) fire(jobID string) {
	s.mu.Lock()
	delete(s.timers, jobID)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.inflight.Add(1)
	s.mu.Unlock()

	s.run(jobID)
}

// run executes one job on its own goroutine. Deferred executions are
// detached from the submitting request, so they get a fresh context.
func (s *Scheduler) run(jobID string) {
	defer s.inflight.Done()
	s.executor.Execute(context.Background(), jobID)
}

// PendingTimers returns the number of armed deferred executions.
func (s *Scheduler) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Drain stops all pending timers and waits for in-flight executions until
// ctx expires. Jobs whose timers were stopped remain scheduled; a restart
// loses them, matching the process-lifetime store.
func (s *Scheduler) Drain(ctx context.Context) error {
	s.mu.Lock()
	s.draining = true
	stopped := 0
	for id, timer := range s.timers {
		if timer.Stop() {
			stopped++
		}
		delete(s.timers, id)
	}
	s.mu.Unlock()

	if stopped > 0 {
		s.log.Info("stopped pending timers on drain", "count", stopped)
	}

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain scheduler: %w", ctx.Err())
	}
}

// parseScheduledDate accepts RFC 3339 timestamps, with or without
// fractional seconds.
func parseScheduledDate(v string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(v))
}

func joinTypes(types []model.JobType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
