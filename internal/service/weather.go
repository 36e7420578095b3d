package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/domain/model"
)

// WeatherService validates coordinate payloads and fetches forecasts from
// the weather provider, substituting the canned Berlin payload whenever the
// provider cannot be reached.
type WeatherService struct {
	provider core.WeatherProvider
	probe    core.ConnectivityProbe
	log      *slog.Logger
}

var _ core.DataService = (*WeatherService)(nil)

// WeatherServiceOptions groups dependencies for NewWeatherService.
type WeatherServiceOptions struct {
	Provider core.WeatherProvider
	Probe    core.ConnectivityProbe
	Logger   *slog.Logger // Optional
}

// NewWeatherService constructs the weather DataService.
func NewWeatherService(opts WeatherServiceOptions) *WeatherService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherService{
		provider: opts.Provider,
		probe:    opts.Probe,
		log:      logger.With("component", "weather_service"),
	}
}

// Validate checks that the payload carries numeric-coercible latitude and
// longitude within range. All field failures are reported together; each
// field yields at most one error.
func (s *WeatherService) Validate(raw json.RawMessage) model.ValidationResult {
	fields, ok := decodeObject(raw)
	if !ok {
		return model.Invalid(model.FieldError{Field: "data", Message: "Data object is required"})
	}

	var errs []model.FieldError
	lat, latErr := requireCoordinate(fields, "latitude", "Latitude", -90, 90)
	if latErr != nil {
		errs = append(errs, *latErr)
	}
	lon, lonErr := requireCoordinate(fields, "longitude", "Longitude", -180, 180)
	if lonErr != nil {
		errs = append(errs, *lonErr)
	}
	if len(errs) > 0 {
		return model.Invalid(errs...)
	}

	return model.ValidationResult{
		Valid:     true,
		Processed: model.WeatherQuery{Latitude: lat, Longitude: lon},
	}
}

// FetchData retrieves the forecast for the validated coordinates. When the
// connectivity probe reports offline, or the single provider call fails, the
// canned Berlin payload is returned instead; the reason is logged, never
// propagated.
func (s *WeatherService) FetchData(ctx context.Context, processed any) (json.RawMessage, error) {
	query, ok := processed.(model.WeatherQuery)
	if !ok {
		return nil, fmt.Errorf("weather fetch: unexpected processed payload %T", processed)
	}

	if !s.probe.Check(ctx) {
		s.log.InfoContext(ctx, "no internet connectivity, returning mock weather data for Berlin")
		return berlinWeatherMock, nil
	}

	payload, err := s.provider.Forecast(ctx, query.Latitude, query.Longitude)
	if err != nil {
		s.log.WarnContext(ctx, "weather fetch failed, returning mock weather data for Berlin",
			"error", err, "latitude", query.Latitude, "longitude", query.Longitude)
		return berlinWeatherMock, nil
	}
	return payload, nil
}

// requireCoordinate validates one coordinate field: presence, numeric
// coercibility, and range. Returns the parsed value or a single FieldError.
func requireCoordinate(
	fields map[string]any,
	key, label string,
	minVal, maxVal float64,
) (float64, *model.FieldError) {
	v, present := fields[key]
	if !present || isBlank(v) {
		return 0, &model.FieldError{Field: key, Message: label + " is required"}
	}

	f, ok := coerceFloat(v)
	if !ok {
		return 0, &model.FieldError{Field: key, Message: label + " must be a valid number"}
	}
	if f < minVal || f > maxVal {
		msg := fmt.Sprintf("%s must be between %s and %s degrees",
			label, formatBound(minVal), formatBound(maxVal))
		return 0, &model.FieldError{Field: key, Message: msg}
	}
	return f, nil
}

// decodeObject unmarshals a raw payload into a generic object. A missing,
// null, or non-object payload yields ok=false.
func decodeObject(raw json.RawMessage) (map[string]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// isBlank reports whether a present JSON value counts as absent: null or a
// string that is empty after trimming.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// coerceFloat accepts JSON numbers and numeric strings.
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
