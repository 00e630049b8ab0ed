package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	healthTimeout     = 5 * time.Second

	// Remote pricing payloads are small; cap body reads at 1 MiB.
	maxBodyBytes = 1 << 20
)

// ClientConfig describes one remote endpoint family. It is read-only
// after NewClient copies it; there is no runtime mutation surface.
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Headers    map[string]string
}

// Client executes JSON-over-HTTP calls against a single remote
// endpoint family with per-attempt timeouts, retry with exponential
// backoff, and a normalized error taxonomy (APIError).
//
// The client is safe for concurrent use: all per-call state lives on
// the stack of execute.
type Client struct {
	cfg     ClientConfig
	session *http.Client

	// retryBase is the unit of the exponential backoff (2^k * retryBase
	// before retry k). Tests shrink it; production keeps one second.
	retryBase time.Duration
}

// requestSpec is a pure description of one call. Query values that are
// empty are not serialized.
type requestSpec struct {
	method string
	path   string
	query  map[string]string
	body   any
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("pricing client: base URL is empty")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("pricing client: negative max retries %d", cfg.MaxRetries)
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}

	// Copy caller headers so later mutation of the original map cannot
	// leak into in-flight requests.
	if len(cfg.Headers) > 0 {
		headers := make(map[string]string, len(cfg.Headers))
		for k, v := range cfg.Headers {
			headers[k] = v
		}
		cfg.Headers = headers
	}

	return &Client{
		cfg:       cfg,
		session:   &http.Client{},
		retryBase: time.Second,
	}, nil
}

// execute runs spec against the endpoint family, retrying transient
// failures, and decodes a successful response into out. Client errors
// (4xx) propagate immediately; timeouts, 5xx and transport failures are
// retried up to MaxRetries additional attempts with 2^k backoff and no
// jitter. The last observed error is returned after exhaustion.
func (c *Client) execute(ctx context.Context, spec requestSpec, out any) error {
	attempts := c.cfg.MaxRetries + 1

	var lastErr *APIError
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return &APIError{Kind: KindNetworkFailure, Message: err.Error()}
		}

		apiErr := c.attempt(ctx, spec, out)
		if apiErr == nil {
			return nil
		}
		lastErr = apiErr

		if !apiErr.Retryable() || attempt == attempts-1 {
			return lastErr
		}

		delay := time.Duration(1<<uint(attempt)) * c.retryBase
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return lastErr
		case <-timer.C:
		}
	}

	return lastErr
}

// attempt performs exactly one network call under the configured
// per-attempt deadline.
func (c *Client) attempt(ctx context.Context, spec requestSpec, out any) *APIError {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := c.newRequest(callCtx, spec)
	if err != nil {
		return &APIError{Kind: KindClientError, Message: err.Error()}
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return classifyTransport(callCtx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return classifyTransport(callCtx, err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp, body)
	}

	return decodeBody(resp, body, out)
}

func (c *Client) newRequest(ctx context.Context, spec requestSpec) (*http.Request, error) {
	var reader io.Reader
	if spec.body != nil {
		payload, err := json.Marshal(spec.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.cfg.BaseURL + spec.path
	req, err := http.NewRequestWithContext(ctx, spec.method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if len(spec.query) > 0 {
		q := url.Values{}
		for k, v := range spec.query {
			if v == "" {
				continue
			}
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	// Configured headers win on collision.
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// HealthCheck probes the family's /health endpoint under a fixed 5s
// deadline and reduces every outcome to a boolean. It never returns an
// error: an unreachable service is simply not healthy.
func (c *Client) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// classifyTransport separates "the deadline fired" from every other
// transport failure so the caller can distinguish Timeout from
// NetworkFailure.
func classifyTransport(callCtx context.Context, err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
		return &APIError{Kind: KindTimeout, Message: "request exceeded configured timeout"}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APIError{Kind: KindTimeout, Message: netErr.Error()}
	}

	return &APIError{Kind: KindNetworkFailure, Message: err.Error()}
}

// errorBody is the conventional error envelope of the pricing services.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// statusError builds an APIError from a non-success response, pulling
// message and code out of a JSON body when there is one and falling
// back to the raw text or status line.
func statusError(resp *http.Response, body []byte) *APIError {
	kind := KindServerError
	if resp.StatusCode < 500 {
		kind = KindClientError
	}

	apiErr := &APIError{
		Kind:    kind,
		Status:  resp.StatusCode,
		Message: resp.Status,
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		apiErr.Message = eb.Message
		apiErr.Code = eb.Code
		return apiErr
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		apiErr.Message = text
	}
	return apiErr
}

// decodeBody fills out from a successful response. JSON responses are
// decoded; anything else is only acceptable when the caller asked for
// raw text via *string.
func decodeBody(resp *http.Response, body []byte, out any) *APIError {
	if out == nil {
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "json") {
		if err := json.Unmarshal(body, out); err != nil {
			return &APIError{
				Kind:    KindUnparseable,
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("decode response: %v", err),
			}
		}
		return nil
	}

	if s, ok := out.(*string); ok {
		*s = string(body)
		return nil
	}

	return &APIError{
		Kind:    KindUnparseable,
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("expected JSON response, got content-type %q", contentType),
	}
}
