package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/domain/model"
)

// CountryService validates country-name payloads against the fixed
// allow-list and fetches country records, substituting the canned Germany
// payload whenever the provider cannot be reached.
type CountryService struct {
	provider core.CountryProvider
	probe    core.ConnectivityProbe
	log      *slog.Logger
}

var _ core.DataService = (*CountryService)(nil)

// CountryServiceOptions groups dependencies for NewCountryService.
type CountryServiceOptions struct {
	Provider core.CountryProvider
	Probe    core.ConnectivityProbe
	Logger   *slog.Logger // Optional
}

// NewCountryService constructs the countries DataService.
func NewCountryService(opts CountryServiceOptions) *CountryService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CountryService{
		provider: opts.Provider,
		probe:    opts.Probe,
		log:      logger.With("component", "country_service"),
	}
}

// Validate checks that countryName is a non-empty string matching the
// allow-list case-insensitively. The processed value keeps the submitter's
// casing, trimmed.
func (s *CountryService) Validate(raw json.RawMessage) model.ValidationResult {
	fields, ok := decodeObject(raw)
	if !ok {
		return model.Invalid(model.FieldError{Field: "data", Message: "Data object is required"})
	}

	v, present := fields["countryName"]
	if !present || v == nil {
		return model.Invalid(model.FieldError{Field: "countryName", Message: "Country name is required"})
	}

	name, isString := v.(string)
	if !isString {
		return model.Invalid(model.FieldError{Field: "countryName", Message: "Country name must be a string"})
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Invalid(model.FieldError{Field: "countryName", Message: "Country name cannot be empty"})
	}

	if !isAllowedCountry(trimmed) {
		return model.Invalid(model.FieldError{
			Field:   "countryName",
			Message: fmt.Sprintf("%q is not a valid country name", trimmed),
		})
	}

	return model.ValidationResult{
		Valid:     true,
		Processed: model.CountryQuery{Name: trimmed},
	}
}

// FetchData looks up the validated country name. When the connectivity probe
// reports offline, or the single provider call fails, the canned Germany
// payload is returned instead.
func (s *CountryService) FetchData(ctx context.Context, processed any) (json.RawMessage, error) {
	query, ok := processed.(model.CountryQuery)
	if !ok {
		return nil, fmt.Errorf("country fetch: unexpected processed payload %T", processed)
	}

	if !s.probe.Check(ctx) {
		s.log.InfoContext(ctx, "no internet connectivity, returning mock country data for Germany")
		return germanyCountryMock, nil
	}

	payload, err := s.provider.Lookup(ctx, query.Name)
	if err != nil {
		s.log.WarnContext(ctx, "country fetch failed, returning mock country data for Germany",
			"error", err, "country", query.Name)
		return germanyCountryMock, nil
	}
	return payload, nil
}

func isAllowedCountry(name string) bool {
	for _, country := range countryAllowList {
		if strings.EqualFold(country, name) {
			return true
		}
	}
	return false
}
