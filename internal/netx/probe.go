package netx

import (
	"context"
	"io"
	"net/http"
	"time"
)

//go:generate moq -out probe_mock.go . Prober

// Prober answers the online/offline question for components that change
// behavior based on connectivity (token issuing, settlement).
type Prober interface {
	IsOnline(ctx context.Context) bool
}

// probeTimeout bounds a single connectivity check. The probe runs on the
// payment path, so it has to fail fast when the network is down.
const probeTimeout = 3 * time.Second

// HTTPProber reports online when the ledger's health endpoint answers 2xx.
type HTTPProber struct {
	client    *http.Client
	healthURL string
}

var _ Prober = (*HTTPProber)(nil)

// NewHTTPProber creates a prober against the given health URL.
func NewHTTPProber(healthURL string) *HTTPProber {
	return &HTTPProber{
		healthURL: healthURL,
		client:    &http.Client{Timeout: probeTimeout},
	}
}

func (p *HTTPProber) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.healthURL, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
