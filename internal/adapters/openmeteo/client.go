// Package openmeteo provides an HTTP client for the Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/opsarc/jobdeck/internal/core"
)

const forecastPath = "/v1/forecast"

// Client fetches current-weather forecasts from Open-Meteo.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ core.WeatherProvider = (*Client)(nil)

// ClientOptions configures NewClient.
type ClientOptions struct {
	BaseURL string        // e.g. https://api.open-meteo.com
	Timeout time.Duration // Optional: defaults to 8s
}

// NewClient constructs an Open-Meteo client.
func NewClient(opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Forecast fetches the current temperature and wind speed for a coordinate
// pair. Exactly one request is made; retries are the caller's concern (and
// jobdeck deliberately makes none).
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,wind_speed_10m")

	endpoint := c.baseURL + forecastPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forecast response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("forecast response is not valid JSON")
	}
	return body, nil
}
