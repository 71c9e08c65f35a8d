// Package praxisclient is a minimal typed client for the analytics HTTP API.
// It depends only on the standard library so it can be vendored into callers
// without dragging in the service's dependency tree.
package praxisclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrAPIFailure wraps any non-2xx response.
var ErrAPIFailure = errors.New("praxis api failure")

// TimeRange optionally bounds an analysis to a time window.
type TimeRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// BenchmarkCriteria narrows a benchmarking analysis to an industry.
type BenchmarkCriteria struct {
	Industry string `json:"industry,omitempty"`
}

// AnalysisRequest is the body of POST /api/v1/analytics/run.
type AnalysisRequest struct {
	AnalysisType      string             `json:"analysis_type"`
	TenantID          string             `json:"tenant_id"`
	TimeRange         *TimeRange         `json:"time_range,omitempty"`
	BenchmarkCriteria *BenchmarkCriteria `json:"benchmark_criteria,omitempty"`
}

// AnalysisResponse is the uniform success envelope of the analysis endpoint.
// Result is left raw so callers can decode it into the per-type payload.
type AnalysisResponse struct {
	Success      bool            `json:"success"`
	AnalysisType string          `json:"analysis_type"`
	TenantID     string          `json:"tenant_id"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Result       json.RawMessage `json:"result"`
}

// ClassifyRequest is the body of POST /api/v1/risk/classify.
type ClassifyRequest struct {
	TenantID    string `json:"tenant_id"`
	Probability int    `json:"probability"`
	Impact      int    `json:"impact"`
}

// ClassifyResponse is the classification result payload.
type ClassifyResponse struct {
	TenantID     string `json:"tenant_id"`
	Score        int    `json:"score"`
	Label        string `json:"label"`
	MatrixType   string `json:"matrix_type"`
	UsedDefaults bool   `json:"used_defaults"`
}

// MatrixResponse is the payload of GET /api/v1/risk/matrix/{tenant_id}.
type MatrixResponse struct {
	Success  bool            `json:"success"`
	TenantID string          `json:"tenant_id"`
	Matrix   json.RawMessage `json:"matrix"`
}

// APIError is the error detail inside the uniform error envelope.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBearerToken attaches a bearer token to every request.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// Client calls the analytics service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunAnalysis executes one analysis.
func (c *Client) RunAnalysis(ctx context.Context, req *AnalysisRequest) (*AnalysisResponse, error) {
	var resp AnalysisResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/analytics/run", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClassifyRisk labels one (probability, impact) pair with the tenant matrix.
func (c *Client) ClassifyRisk(ctx context.Context, req *ClassifyRequest) (*ClassifyResponse, error) {
	var resp ClassifyResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/risk/classify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMatrix fetches the matrix configuration the tenant classifies with.
func (c *Client) GetMatrix(ctx context.Context, tenantID string) (*MatrixResponse, error) {
	var resp MatrixResponse
	path := "/api/v1/risk/matrix/" + url.PathEscape(tenantID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != nil {
			return fmt.Errorf("%w: %s", ErrAPIFailure, envelope.Error.Error())
		}
		return fmt.Errorf("%w: status %d", ErrAPIFailure, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
