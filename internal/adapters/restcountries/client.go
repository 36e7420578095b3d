// Package restcountries provides an HTTP client for the REST Countries API.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/opsarc/jobdeck/internal/core"
)

// Client looks up country records from REST Countries v3.1.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ core.CountryProvider = (*Client)(nil)

// ClientOptions configures NewClient.
type ClientOptions struct {
	BaseURL string        // e.g. https://restcountries.com
	Timeout time.Duration // Optional: defaults to 8s
}

// NewClient constructs a REST Countries client.
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

// Lookup fetches the country records matching name. The response is an
// array of country objects in the provider's shape.
func (c *Client) Lookup(ctx context.Context, name string) (json.RawMessage, error) {
	endpoint := c.baseURL + "/v3.1/name/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build country request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read country response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("country response is not valid JSON")
	}
	return body, nil
}
