// Package model defines the core data types for the jobdeck scheduling system.
package model

import (
	"encoding/json"
	"strings"
	"time"
)

// JobType identifies which validator/fetcher pair applies to a job.
type JobType string

// JobStatus represents the lifecycle state of a job record.
type JobStatus string

const (
	// JobTypeWeather fetches a weather forecast for a coordinate pair.
	JobTypeWeather JobType = "weather"
	// JobTypeCountries fetches country records by country name.
	JobTypeCountries JobType = "countries"

	// JobStatusScheduled indicates a job is waiting for execution.
	JobStatusScheduled JobStatus = "scheduled"
	// JobStatusCompleted indicates a job finished and holds its fetched payload.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates a job could not be executed.
	JobStatusFailed JobStatus = "failed"
)

// Valid returns true if the JobType is one of the registered types.
func (t JobType) Valid() bool {
	return t == JobTypeWeather || t == JobTypeCountries
}

// Valid returns true if the JobStatus is a known lifecycle state.
func (s JobStatus) Valid() bool {
	return s == JobStatusScheduled || s == JobStatusCompleted || s == JobStatusFailed
}

// Terminal reports whether the status is an end state.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job is one unit of scheduled work requesting external data for a tenant.
//
// Data holds the raw request payload until execution; after a successful
// execution it is replaced by the fetched provider payload (or cleared when
// the fetch legitimately produced nothing). Status transitions exactly once,
// from scheduled to completed or failed.
type Job struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CreatedDate   time.Time       `json:"createdDate"`
	ScheduledDate time.Time       `json:"scheduledDate"`
	Status        JobStatus       `json:"status"`
	Type          JobType         `json:"type"`
	TenantID      string          `json:"tenantId"`
	Data          json.RawMessage `json:"data,omitempty"`
}

// Clone returns a deep copy of the job so callers cannot alias store state.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	cp := *j
	if j.Data != nil {
		cp.Data = make(json.RawMessage, len(j.Data))
		copy(cp.Data, j.Data)
	}
	return &cp
}

// CreateJobRequest is the submission body for POST /api/job.
// ScheduledDate stays a string here; the scheduler parses and rejects it
// before a record is created.
type CreateJobRequest struct {
	Name          string          `json:"name"`
	ScheduledDate string          `json:"scheduledDate"`
	Type          JobType         `json:"type"`
	TenantID      string          `json:"tenantId"`
	Data          json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether the request carries a non-null data payload.
func (r *CreateJobRequest) HasData() bool {
	trimmed := strings.TrimSpace(string(r.Data))
	return trimmed != "" && trimmed != "null"
}

// NewJobParams carries the fields the store needs to mint a job record.
// ID and CreatedDate are assigned by the store.
type NewJobParams struct {
	Name          string
	Type          JobType
	TenantID      string
	ScheduledDate time.Time
	Data          json.RawMessage
}

// FieldError describes a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of a per-job-type validation pass.
// It is produced fresh per call and never persisted. Processed holds the
// normalized payload (a WeatherQuery or CountryQuery) when Valid is true.
type ValidationResult struct {
	Valid     bool
	Errors    []FieldError
	Processed any
}

// Invalid builds a failed ValidationResult from the accumulated errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// WeatherQuery is the normalized payload for a weather job.
type WeatherQuery struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CountryQuery is the normalized payload for a countries job.
// Name keeps the submitter's casing, trimmed of surrounding whitespace.
type CountryQuery struct {
	Name string `json:"countryName"`
}
