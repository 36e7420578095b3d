// Package service contains jobdeck's business logic: the per-type data
// services, their registry, the job executor, and the scheduler.
package service

import (
	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/domain/model"
)

// Registry is the fixed lookup from a job type to the validator/fetcher pair
// implementing it. The set of registered types is closed at construction;
// each adapter is instantiated once and reused across calls.
type Registry struct {
	services map[model.JobType]core.DataService
	order    []model.JobType
}

// RegistryOptions names the one DataService per registered job type.
type RegistryOptions struct {
	Weather   core.DataService
	Countries core.DataService
}

// NewRegistry builds the registry with the fixed set of job types.
func NewRegistry(opts RegistryOptions) *Registry {
	return &Registry{
		services: map[model.JobType]core.DataService{
			model.JobTypeWeather:   opts.Weather,
			model.JobTypeCountries: opts.Countries,
		},
		order: []model.JobType{model.JobTypeWeather, model.JobTypeCountries},
	}
}

// Get returns the DataService for a job type, or nil when the type is
// unknown, empty, or malformed.
func (r *Registry) Get(jobType model.JobType) core.DataService {
	return r.services[jobType]
}

// AvailableTypes returns the registered job types in registration order.
// Each call builds a fresh slice so caller mutation cannot affect registry
// state.
func (r *Registry) AvailableTypes() []model.JobType {
	return append([]model.JobType(nil), r.order...)
}
