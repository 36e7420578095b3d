package config

import (
	"strings"
	"time"
)

// ProvidersConfig configures the upstream data providers.
type ProvidersConfig struct {
	// WeatherBaseURL is the Open-Meteo forecast API base URL.
	WeatherBaseURL string `env:"WEATHER_BASE_URL" envDefault:"https://api.open-meteo.com"`

	// CountriesBaseURL is the REST Countries API base URL.
	CountriesBaseURL string `env:"COUNTRIES_BASE_URL" envDefault:"https://restcountries.com"`

	// FetchTimeout bounds each upstream data fetch.
	FetchTimeout time.Duration `env:"PROVIDER_FETCH_TIMEOUT" envDefault:"8s"`
}

// Sanitize applies guardrails to provider configuration values.
func (p *ProvidersConfig) Sanitize() {
	p.WeatherBaseURL = strings.TrimRight(strings.TrimSpace(p.WeatherBaseURL), "/")
	if p.WeatherBaseURL == "" {
		p.WeatherBaseURL = "https://api.open-meteo.com"
	}
	p.CountriesBaseURL = strings.TrimRight(strings.TrimSpace(p.CountriesBaseURL), "/")
	if p.CountriesBaseURL == "" {
		p.CountriesBaseURL = "https://restcountries.com"
	}
	if p.FetchTimeout <= 0 {
		p.FetchTimeout = 8 * time.Second
	}
}

// ProbeConfig configures the internet-connectivity probe consulted before
// each upstream fetch.
type ProbeConfig struct {
	// URL is fetched to decide whether the process is online.
	URL string `env:"CONNECTIVITY_PROBE_URL" envDefault:"https://httpbin.org/status/200"`

	// Timeout bounds each probe request.
	Timeout time.Duration `env:"CONNECTIVITY_PROBE_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to probe configuration values.
func (p *ProbeConfig) Sanitize() {
	p.URL = strings.TrimSpace(p.URL)
	if p.URL == "" {
		p.URL = "https://httpbin.org/status/200"
	}
	if p.Timeout <= 0 {
		p.Timeout = 5 * time.Second
	}
}

// SchedulerConfig configures job scheduling and drain behaviour.
type SchedulerConfig struct {
	// DrainTimeout bounds the wait for in-flight job executions on shutdown.
	DrainTimeout time.Duration `env:"SCHEDULER_DRAIN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to scheduler configuration values.
func (s *SchedulerConfig) Sanitize() {
	if s.DrainTimeout <= 0 {
		s.DrainTimeout = 10 * time.Second
	}
}
