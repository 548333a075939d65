// Package http provides the shared HTTP client used by the summary
// backends. It includes retry with exponential backoff and JSON helpers.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config configures the shared client.
type Config struct {
	Timeout           time.Duration
	MaxRetries        int
	BaseRetryDelay    time.Duration
	MaxRetryDelay     time.Duration
	BackoffMultiplier float64
	RetryableStatuses []int
	UserAgent         string
}

// Client wraps net/http with retry logic shared by both providers. It
// only retries requests whose bodies can be rebuilt (GET, or JSON
// payloads marshaled per attempt), so no body-reuse issues arise.
type Client struct {
	client *http.Client
	config Config
}

// NewClient creates a client, filling unset config fields with defaults.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 2
	}
	if config.BaseRetryDelay == 0 {
		config.BaseRetryDelay = 500 * time.Millisecond
	}
	if config.MaxRetryDelay == 0 {
		config.MaxRetryDelay = 10 * time.Second
	}
	if config.BackoffMultiplier == 0 {
		config.BackoffMultiplier = 2.0
	}
	if len(config.RetryableStatuses) == 0 {
		config.RetryableStatuses = []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		}
	}
	if config.UserAgent == "" {
		config.UserAgent = "summary-kit/1.0"
	}

	return &Client{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
	}
}

// HTTPClient returns the underlying net/http client.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// Do executes a request built by build, retrying retryable failures.
// build is called once per attempt so request bodies are fresh.
func (c *Client) Do(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := CalculateBackoff(BackoffConfig{
				BaseDelay:  c.config.BaseRetryDelay,
				MaxDelay:   c.config.MaxRetryDelay,
				Multiplier: c.config.BackoffMultiplier,
			}, attempt)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var req *http.Request
		req, err = build()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)
		req.Header.Set("User-Agent", c.config.UserAgent)

		resp, err = c.client.Do(req)
		if err != nil {
			// Deadline and cancellation errors are terminal; waiting
			// longer cannot help.
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}

		if c.retryableStatus(resp.StatusCode) && attempt < c.config.MaxRetries {
			DrainAndClose(resp)
			continue
		}

		return resp, nil
	}

	return resp, err
}

// GetJSON issues a GET and decodes the 2xx JSON response into target.
func (c *Client) GetJSON(ctx context.Context, url string, target interface{}) error {
	resp, err := c.Do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if err != nil {
		return err
	}
	return DecodeJSON(resp, target)
}

// PostJSON issues a POST with a JSON payload and returns the response.
// headers are applied to every attempt.
func (c *Client) PostJSON(ctx context.Context, url string, payload interface{}, headers map[string]string) (*http.Response, error) {
	return c.Do(ctx, func() (*http.Request, error) {
		req, err := NewJSONRequest(http.MethodPost, url, payload)
		if err != nil {
			return nil, err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
}

func (c *Client) retryableStatus(status int) bool {
	for _, s := range c.config.RetryableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// NewJSONRequest creates a JSON HTTP request with proper headers
func NewJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// DecodeJSON reads a response body, closes it, and unmarshals a 2xx
// payload into target. Non-2xx responses produce an *APIError carrying
// the status and raw body.
func DecodeJSON(resp *http.Response, target interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NewAPIError(resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

// DrainAndClose discards any remaining body so the connection can be
// reused, then closes it.
func DrainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
