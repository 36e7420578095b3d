package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/opsarc/jobdeck/config"
	"github.com/opsarc/jobdeck/internal/adapters/connectivity"
	"github.com/opsarc/jobdeck/internal/adapters/openmeteo"
	"github.com/opsarc/jobdeck/internal/adapters/restcountries"
	"github.com/opsarc/jobdeck/internal/data"
	"github.com/opsarc/jobdeck/internal/observability/statsd"
	"github.com/opsarc/jobdeck/internal/service"
)

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Store     *data.MemStore
	Registry  *service.Registry
	Executor  *service.Executor
	Scheduler *service.Scheduler
	Metrics   *statsd.Client
}

// ServiceDeps contains dependencies for building the service container.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices wires the probe, providers, data services, store, executor,
// and scheduler into a ready container.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metricsClient, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect statsd: %w", err)
	}

	probe := connectivity.NewProbe(connectivity.ProbeOptions{
		URL:     cfg.Probe.URL,
		Timeout: cfg.Probe.Timeout,
		Logger:  logger,
	})

	registry := service.NewRegistry(service.RegistryOptions{
		Weather: service.NewWeatherService(service.WeatherServiceOptions{
			Provider: openmeteo.NewClient(openmeteo.ClientOptions{
				BaseURL: cfg.Providers.WeatherBaseURL,
				Timeout: cfg.Providers.FetchTimeout,
			}),
			Probe:  probe,
			Logger: logger,
		}),
		Countries: service.NewCountryService(service.CountryServiceOptions{
			Provider: restcountries.NewClient(restcountries.ClientOptions{
				BaseURL: cfg.Providers.CountriesBaseURL,
				Timeout: cfg.Providers.FetchTimeout,
			}),
			Probe:  probe,
			Logger: logger,
		}),
	})

	store := data.NewMemStore(data.MemStoreOptions{Logger: logger})

	executor := service.NewExecutor(service.ExecutorOptions{
		Store:    store,
		Registry: registry,
		Logger:   logger,
		Metrics:  metricsClient,
	})

	scheduler := service.NewScheduler(service.SchedulerOptions{
		Store:    store,
		Registry: registry,
		Executor: executor,
		Logger:   logger,
	})

	return &ServiceContainer{
		Store:     store,
		Registry:  registry,
		Executor:  executor,
		Scheduler: scheduler,
		Metrics:   metricsClient,
	}, nil
}

// Close releases resources held by the container.
func (c *ServiceContainer) Close() error {
	if c == nil {
		return nil
	}
	return c.Metrics.Close()
}
