package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsarc/jobdeck/internal/domain/model"
	"github.com/opsarc/jobdeck/internal/mocks"
	"github.com/opsarc/jobdeck/internal/testutil"
)

func newWeatherService(t *testing.T) (*WeatherService, *mocks.MockWeatherProvider, *mocks.MockConnectivityProbe) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockWeatherProvider(ctrl)
	probe := mocks.NewMockConnectivityProbe(ctrl)
	svc := NewWeatherService(WeatherServiceOptions{
		Provider: provider,
		Probe:    probe,
		Logger:   testutil.DiscardLogger(),
	})
	return svc, provider, probe
}

func TestWeatherServiceValidate(t *testing.T) {
	svc, _, _ := newWeatherService(t)

	tests := []struct {
		name       string
		data       string
		wantErrors []model.FieldError
	}{
		{
			name: "valid coordinates",
			data: `{"latitude": 52.52, "longitude": 13.405}`,
		},
		{
			name: "zero coordinates are valid",
			data: `{"latitude": 0, "longitude": 0}`,
		},
		{
			name: "boundary values are valid",
			data: `{"latitude": -90, "longitude": 180}`,
		},
		{
			name: "numeric strings coerce",
			data: `{"latitude": "52.52", "longitude": " -13.4 "}`,
		},
		{
			name: "missing both fields",
			data: `{}`,
			wantErrors: []model.FieldError{
				{Field: "latitude", Message: "Latitude is required"},
				{Field: "longitude", Message: "Longitude is required"},
			},
		},
		{
			name: "null latitude",
			data: `{"latitude": null, "longitude": 13.405}`,
			wantErrors: []model.FieldError{
				{Field: "latitude", Message: "Latitude is required"},
			},
		},
		{
			name: "blank string longitude",
			data: `{"latitude": 52.52, "longitude": "   "}`,
			wantErrors: []model.FieldError{
				{Field: "longitude", Message: "Longitude is required"},
			},
		},
		{
			name: "non-numeric latitude",
			data: `{"latitude": "north", "longitude": 13.405}`,
			wantErrors: []model.FieldError{
				{Field: "latitude", Message: "Latitude must be a valid number"},
			},
		},
		{
			name: "boolean longitude",
			data: `{"latitude": 52.52, "longitude": true}`,
			wantErrors: []model.FieldError{
				{Field: "longitude", Message: "Longitude must be a valid number"},
			},
		},
		{
			name: "latitude out of range",
			data: `{"latitude": 90.5, "longitude": 13.405}`,
			wantErrors: []model.FieldError{
				{Field: "latitude", Message: "Latitude must be between -90 and 90 degrees"},
			},
		},
		{
			name: "longitude out of range",
			data: `{"latitude": 52.52, "longitude": -180.1}`,
			wantErrors: []model.FieldError{
				{Field: "longitude", Message: "Longitude must be between -180 and 180 degrees"},
			},
		},
		{
			name: "both fields invalid reported together",
			data: `{"latitude": 91, "longitude": "east"}`,
			wantErrors: []model.FieldError{
				{Field: "latitude", Message: "Latitude must be between -90 and 90 degrees"},
				{Field: "longitude", Message: "Longitude must be a valid number"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Validate(json.RawMessage(tt.data))

			if len(tt.wantErrors) == 0 {
				require.True(t, result.Valid, "errors: %v", result.Errors)
				query, ok := result.Processed.(model.WeatherQuery)
				require.True(t, ok, "processed should be a WeatherQuery")
				assert.GreaterOrEqual(t, query.Latitude, -90.0)
				assert.LessOrEqual(t, query.Latitude, 90.0)
				return
			}

			assert.False(t, result.Valid)
			assert.Equal(t, tt.wantErrors, result.Errors)
			assert.Nil(t, result.Processed)
		})
	}
}

func TestWeatherServiceValidateNonObjectData(t *testing.T) {
	svc, _, _ := newWeatherService(t)

	for _, data := range []string{"", "null", `"text"`, `[1,2]`, `{bad`} {
		result := svc.Validate(json.RawMessage(data))
		require.False(t, result.Valid, "data=%q", data)
		require.Equal(t, []model.FieldError{
			{Field: "data", Message: "Data object is required"},
		}, result.Errors, "data=%q", data)
	}
}

func TestWeatherServiceValidateProcessedValues(t *testing.T) {
	svc, _, _ := newWeatherService(t)

	result := svc.Validate(json.RawMessage(`{"latitude": "-45.5", "longitude": 170}`))
	require.True(t, result.Valid)
	assert.Equal(t, model.WeatherQuery{Latitude: -45.5, Longitude: 170}, result.Processed)
}

func TestWeatherServiceFetchData(t *testing.T) {
	ctx := context.Background()
	query := model.WeatherQuery{Latitude: 52.52, Longitude: 13.405}

	t.Run("online fetch returns provider payload", func(t *testing.T) {
		svc, provider, probe := newWeatherService(t)
		payload := json.RawMessage(`{"current": {"temperature_2m": 7.3}}`)

		probe.EXPECT().Check(gomock.Any()).Return(true)
		provider.EXPECT().Forecast(gomock.Any(), 52.52, 13.405).Return(payload, nil)

		got, err := svc.FetchData(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("offline returns mock payload", func(t *testing.T) {
		svc, _, probe := newWeatherService(t)
		probe.EXPECT().Check(gomock.Any()).Return(false)

		got, err := svc.FetchData(ctx, query)
		require.NoError(t, err)
		assertBerlinMock(t, got)
	})

	t.Run("provider error falls back to mock payload", func(t *testing.T) {
		svc, provider, probe := newWeatherService(t)
		probe.EXPECT().Check(gomock.Any()).Return(true)
		provider.EXPECT().
			Forecast(gomock.Any(), 52.52, 13.405).
			Return(nil, errors.New("upstream 503"))

		got, err := svc.FetchData(ctx, query)
		require.NoError(t, err)
		assertBerlinMock(t, got)
	})

	t.Run("unexpected processed payload errors", func(t *testing.T) {
		svc, _, _ := newWeatherService(t)
		_, err := svc.FetchData(ctx, "not a query")
		require.Error(t, err)
	})
}

func assertBerlinMock(t *testing.T, payload json.RawMessage) {
	t.Helper()

	var decoded struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Current   struct {
			Temperature float64 `json:"temperature_2m"`
		} `json:"current"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.InDelta(t, 52.52, decoded.Latitude, 0.001)
	assert.InDelta(t, 13.405, decoded.Longitude, 0.001)
	assert.InDelta(t, 2.1, decoded.Current.Temperature, 0.001)
}
