// Package testutil provides testing utilities and helpers for the jobdeck job system.
package testutil

import (
	"encoding/json"
	"time"

	"github.com/opsarc/jobdeck/internal/domain/model"
)

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a new JobRequestBuilder with sensible defaults.
func NewJobRequest() *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			Name:          "Berlin forecast",
			ScheduledDate: TestTime().Format(time.RFC3339),
			TenantID:      "tenant-a",
			Type:          model.JobTypeWeather,
			Data:          json.RawMessage(`{"latitude": 52.52, "longitude": 13.405}`),
		},
	}
}

// WithName sets the job name.
func (b *JobRequestBuilder) WithName(name string) *JobRequestBuilder {
	b.req.Name = name
	return b
}

// WithType sets the job type.
func (b *JobRequestBuilder) WithType(jobType model.JobType) *JobRequestBuilder {
	b.req.Type = jobType
	return b
}

// WithTenant sets the tenant identifier.
func (b *JobRequestBuilder) WithTenant(tenantID string) *JobRequestBuilder {
	b.req.TenantID = tenantID
	return b
}

// WithScheduledDate sets the scheduled timestamp from a raw string.
func (b *JobRequestBuilder) WithScheduledDate(scheduledDate string) *JobRequestBuilder {
	b.req.ScheduledDate = scheduledDate
	return b
}

// WithScheduledAt sets the scheduled timestamp from a time value.
func (b *JobRequestBuilder) WithScheduledAt(scheduledAt time.Time) *JobRequestBuilder {
	b.req.ScheduledDate = scheduledAt.Format(time.RFC3339Nano)
	return b
}

// WithData sets the job data payload.
func (b *JobRequestBuilder) WithData(data json.RawMessage) *JobRequestBuilder {
	b.req.Data = data
	return b
}

// WithDataString sets the job data payload from a string.
func (b *JobRequestBuilder) WithDataString(data string) *JobRequestBuilder {
	b.req.Data = json.RawMessage(data)
	return b
}

// Build returns the constructed CreateJobRequest.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	return b.req
}

// Common test job request presets

// WeatherJobRequest creates a weather job request with valid Berlin coordinates.
func WeatherJobRequest() *model.CreateJobRequest {
	return NewJobRequest().
		WithType(model.JobTypeWeather).
		WithDataString(`{"latitude": 52.52, "longitude": 13.405}`).
		Build()
}

// CountriesJobRequest creates a countries job request for the given country name.
func CountriesJobRequest(name string) *model.CreateJobRequest {
	return NewJobRequest().
		WithName("Country lookup").
		WithType(model.JobTypeCountries).
		WithDataString(`{"name": "` + name + `"}`).
		Build()
}

// FutureJobRequest creates a job request scheduled for the future.
func FutureJobRequest(scheduledAt time.Time) *model.CreateJobRequest {
	return NewJobRequest().
		WithScheduledAt(scheduledAt).
		Build()
}
