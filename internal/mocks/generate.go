// Package mocks provides generated mocks for jobdeck's core ports.
//
// The mocks are generated with go.uber.org/mock (gomock). To regenerate
// after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Mock for the per-job-type validator/fetcher pair.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=data_service_mock.go github.com/opsarc/jobdeck/internal/core DataService

// Mock for the internet-connectivity probe.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=connectivity_probe_mock.go github.com/opsarc/jobdeck/internal/core ConnectivityProbe

// Mocks for the upstream data providers.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=weather_provider_mock.go github.com/opsarc/jobdeck/internal/core WeatherProvider
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=country_provider_mock.go github.com/opsarc/jobdeck/internal/core CountryProvider

// Mock for the job record store.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_store_mock.go github.com/opsarc/jobdeck/internal/core JobStore
