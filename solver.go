package cubekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SolverClient talks to an external two-phase search solver over HTTP.
// The service accepts a 54-character facelet string and returns a
// space-separated move sequence, or a failure signal when the
// configuration is unsolvable or malformed. Solving is the only
// latency source in this package; callers on a responsiveness-
// sensitive path should run Solve on a worker and use the context for
// cancellation.
type SolverClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSolverClient creates a client for the solver service at baseURL.
func NewSolverClient(baseURL string, opts ...SolverOption) *SolverClient {
	c := &SolverClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// solveRequest is the wire format of a solve call.
type solveRequest struct {
	Cube string `json:"cube"`
}

// solveResponse is the wire format of a solve result.
type solveResponse struct {
	Success  bool     `json:"success"`
	Solution []string `json:"solution"`
	Error    string   `json:"error"`
}

// Solve validates and encodes the cube, submits it, and maps the
// returned tokens back onto moves. A non-success reply surfaces as
// ErrUnsolvable with the service's message attached.
func (s *SolverClient) Solve(ctx context.Context, c *Cube) ([]Move, error) {
	if ok, diag := c.Validate(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsolvable, diag)
	}
	notation, err := c.Notation()
	if err != nil {
		return nil, err
	}
	return s.SolveNotation(ctx, notation)
}

// SolveNotation submits a 54-character facelet string directly.
func (s *SolverClient) SolveNotation(ctx context.Context, notation string) ([]Move, error) {
	body, err := json.Marshal(solveRequest{Cube: notation})
	if err != nil {
		return nil, fmt.Errorf("encoding solve request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/solve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building solve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverUnavailable, err)
	}
	defer resp.Body.Close()

	var result solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrSolverUnavailable, err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsolvable, msg)
	}

	return ParseMoves(strings.Join(result.Solution, " "))
}
