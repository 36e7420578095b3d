// Package connectivity implements the internet-connectivity probe.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/opsarc/jobdeck/internal/core"
)

// Probe checks internet reachability by fetching a known URL with a bounded
// timeout. Any failure, including a non-2xx status, counts as offline.
type Probe struct {
	url    string
	client *http.Client
	log    *slog.Logger
}

var _ core.ConnectivityProbe = (*Probe)(nil)

// ProbeOptions configures NewProbe.
type ProbeOptions struct {
	URL     string
	Timeout time.Duration // Optional: defaults to 5s
	Logger  *slog.Logger  // Optional
}

// NewProbe constructs the connectivity probe.
func NewProbe(opts ProbeOptions) *Probe {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Probe{
		url:    opts.URL,
		client: &http.Client{Timeout: timeout},
		log:    logger.With("component", "connectivity_probe"),
	}
}

// Check reports whether the probe URL is reachable.
func (p *Probe) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.log.DebugContext(ctx, "connectivity probe request invalid", "error", err)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.DebugContext(ctx, "no internet connectivity detected", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.log.DebugContext(ctx, "no internet connectivity detected", "status", resp.StatusCode)
		return false
	}
	return true
}
