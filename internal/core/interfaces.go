// Package core defines the ports between jobdeck's services, store, and
// external collaborators.
package core

import (
	"context"
	"encoding/json"

	"github.com/opsarc/jobdeck/internal/domain/model"
)

// DataService is the per-job-type validator/fetcher pair held by the registry.
//
// Validate never returns an error: every rejection surfaces as an entry in
// the result's Errors slice. FetchData receives the Processed value from a
// successful validation and returns the provider payload; implementations
// substitute canned mock data for connectivity or provider failures, so an
// error from FetchData means something genuinely unexpected happened.
type DataService interface {
	Validate(raw json.RawMessage) model.ValidationResult
	FetchData(ctx context.Context, processed any) (json.RawMessage, error)
}

// ConnectivityProbe reports whether the process can reach the internet.
// Implementations must bound the check with a timeout.
type ConnectivityProbe interface {
	Check(ctx context.Context) bool
}

// WeatherProvider fetches a forecast payload for a coordinate pair.
type WeatherProvider interface {
	Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

// CountryProvider looks up country records by name.
type CountryProvider interface {
	Lookup(ctx context.Context, name string) (json.RawMessage, error)
}

// JobStore is the append-only, process-lifetime collection of job records.
//
// Records are never deleted. Status mutation happens inside the store under
// its lock: the executor decides the outcome and the store performs the
// single scheduled-to-terminal replace. All returned jobs are copies.
type JobStore interface {
	// Create mints a new record with a unique id, createdDate = now, and
	// status scheduled.
	Create(ctx context.Context, params model.NewJobParams) (*model.Job, error)

	// Get returns a copy of the job, or data.ErrJobNotFound.
	Get(ctx context.Context, id string) (*model.Job, error)

	// ListByTenant returns copies of the tenant's jobs in insertion order,
	// narrowed by jobType when it is non-empty.
	ListByTenant(ctx context.Context, tenantID string, jobType model.JobType) ([]*model.Job, error)

	// Complete transitions scheduled -> completed and replaces the record's
	// data with the fetched payload (nil clears it). Fails if the job is
	// missing or already terminal.
	Complete(ctx context.Context, id string, data json.RawMessage) error

	// Fail transitions scheduled -> failed, leaving data untouched.
	Fail(ctx context.Context, id string) error
}
