// Package data provides jobdeck's in-memory job record store.
package data

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/domain/model"
)

// MemStore is an append-only, process-lifetime job store guarded by a
// mutex. Records live for the lifetime of the process; only their status and
// data fields ever change, and only once, through Complete or Fail.
type MemStore struct {
	mu    sync.RWMutex
	jobs  []*model.Job
	byID  map[string]*model.Job
	clock Clock
	log   *slog.Logger
}

var _ core.JobStore = (*MemStore)(nil)

// MemStoreOptions groups dependencies for NewMemStore.
type MemStoreOptions struct {
	Clock  Clock        // Optional: defaults to RealClock
	Logger *slog.Logger // Optional
}

// NewMemStore creates an empty in-memory job store.
func NewMemStore(opts MemStoreOptions) *MemStore {
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MemStore{
		byID:  make(map[string]*model.Job),
		clock: clock,
		log:   logger.With("component", "mem_store"),
	}
}

// Create mints a new job record with status scheduled and the raw request
// payload in data.
func (s *MemStore) Create(ctx context.Context, params model.NewJobParams) (*model.Job, error) {
	job := &model.Job{
		ID:            uuid.NewString(),
		Name:          params.Name,
		CreatedDate:   s.clock.Now(),
		ScheduledDate: params.ScheduledDate,
		Status:        model.JobStatusScheduled,
		Type:          params.Type,
		TenantID:      params.TenantID,
		Data:          params.Data,
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.byID[job.ID] = job
	s.mu.Unlock()

	s.log.DebugContext(ctx, "job created", "id", job.ID, "type", job.Type, "tenant", job.TenantID)
	return job.Clone(), nil
}

// Get returns a copy of the job, or ErrJobNotFound.
func (s *MemStore) Get(_ context.Context, id string) (*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.byID[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return job.Clone(), nil
}

// ListByTenant returns copies of the tenant's jobs in insertion order.
// An empty jobType matches every type.
func (s *MemStore) ListByTenant(
	_ context.Context,
	tenantID string,
	jobType model.JobType,
) ([]*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Job, 0)
	for _, job := range s.jobs {
		if job.TenantID != tenantID {
			continue
		}
		if jobType != "" && job.Type != jobType {
			continue
		}
		out = append(out, job.Clone())
	}
	return out, nil
}

// Complete performs the scheduled -> completed transition and replaces the
// record's data with the fetched payload. A nil payload clears data.
func (s *MemStore) Complete(ctx context.Context, id string, payload json.RawMessage) error {
	return s.finish(ctx, id, model.JobStatusCompleted, payload, true)
}

// Fail performs the scheduled -> failed transition. The raw request payload
// stays on the record for inspection.
func (s *MemStore) Fail(ctx context.Context, id string) error {
	return s.finish(ctx, id, model.JobStatusFailed, nil, false)
}

func (s *MemStore) finish(
	ctx context.Context,
	id string,
	status model.JobStatus,
	payload json.RawMessage,
	replaceData bool,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.byID[id]
	if !ok {
		return ErrJobNotFound
	}
	if job.Status.Terminal() {
		return ErrJobTerminal
	}

	job.Status = status
	if replaceData {
		job.Data = payload
	}

	s.log.DebugContext(ctx, "job transitioned", "id", id, "status", status)
	return nil
}

// Len returns the number of records in the store.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
