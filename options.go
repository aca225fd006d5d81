package cubekit

import (
	"net/http"
	"time"
)

// SolverOption configures a SolverClient.
type SolverOption func(*SolverClient)

// WithHTTPClient replaces the default HTTP client. Useful for custom
// transports and for tests.
func WithHTTPClient(hc *http.Client) SolverOption {
	return func(s *SolverClient) {
		s.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(d time.Duration) SolverOption {
	return func(s *SolverClient) {
		s.httpClient.Timeout = d
	}
}
