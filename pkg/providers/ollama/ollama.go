// Package ollama implements the local summary provider backed by a
// self-hosted Ollama server. Availability is a network liveness probe:
// the provider is usable only when the server answers its tags endpoint
// and the exact model is installed. Generation uses a long timeout,
// since local inference on commodity hardware is slow.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	internalhttp "github.com/cecil-the-coder/summary-kit/internal/http"
	"github.com/cecil-the-coder/summary-kit/pkg/catalog"
	"github.com/cecil-the-coder/summary-kit/pkg/providers/common"
	"github.com/cecil-the-coder/summary-kit/pkg/types"
)

const (
	// DefaultBaseURL is the standard local Ollama address.
	DefaultBaseURL = "http://localhost:11434"

	// ProbeTimeout bounds the tags liveness probe.
	ProbeTimeout = 5 * time.Second

	// GenerateTimeout bounds one local generation call. Local models
	// routinely take a minute or more per summary.
	GenerateTimeout = 120 * time.Second

	temperature = 0.3
	topP        = 1.0
)

// Status is the result of probing the local server.
type Status struct {
	Available  bool     `json:"available"`
	ModelCount int      `json:"model_count,omitempty"`
	Models     []string `json:"models,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// tagsResponse mirrors the Ollama /api/tags payload.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// StatusClient probes a local Ollama server. It is shared by the
// provider and the manager so that listing enabled local models costs
// one round trip, not one per label.
type StatusClient struct {
	baseURL string
	client  *internalhttp.Client
}

// NewStatusClient creates a probe client against baseURL.
func NewStatusClient(baseURL string) *StatusClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &StatusClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// A probe is a quick liveness check; retrying it defeats the point.
		client: internalhttp.NewClient(internalhttp.Config{
			Timeout:    ProbeTimeout,
			MaxRetries: 1,
		}),
	}
}

// Probe checks the tags endpoint. It never returns an error: any
// network failure, non-2xx status, or malformed response yields an
// unavailable Status carrying the reason.
func (s *StatusClient) Probe(ctx context.Context) Status {
	var tags tagsResponse
	if err := s.client.GetJSON(ctx, s.baseURL+"/api/tags", &tags); err != nil {
		var apiErr *internalhttp.APIError
		if errors.As(err, &apiErr) {
			return Status{Available: false, Error: fmt.Sprintf("HTTP %d", apiErr.StatusCode)}
		}
		return Status{Available: false, Error: err.Error()}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return Status{Available: true, ModelCount: len(names), Models: names}
}

// Provider is the local variant of types.SummaryProvider. Handles are
// created per dispatch and hold no state between calls.
type Provider struct {
	descriptor types.ProviderDescriptor
	baseURL    string
	status     *StatusClient
	client     *internalhttp.Client
}

// Option customizes a Provider, primarily for tests.
type Option func(*Provider)

// WithClient overrides the generation HTTP client.
func WithClient(client *internalhttp.Client) Option {
	return func(p *Provider) { p.client = client }
}

// WithStatusClient overrides the probe client.
func WithStatusClient(status *StatusClient) Option {
	return func(p *Provider) { p.status = status }
}

// New creates a local provider bound to one descriptor and base URL.
func New(descriptor types.ProviderDescriptor, baseURL string, opts ...Option) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	p := &Provider{
		descriptor: descriptor,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		status:     NewStatusClient(baseURL),
		client: internalhttp.NewClient(internalhttp.Config{
			Timeout:    GenerateTimeout,
			MaxRetries: 1,
		}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Available probes the server and reports whether this provider's
// exact model is installed. Probe failures yield false, never an error.
func (p *Provider) Available(ctx context.Context) bool {
	status := p.status.Probe(ctx)
	if !status.Available {
		return false
	}
	for _, name := range status.Models {
		if name == p.descriptor.BackendModelID {
			return true
		}
	}
	return false
}

// BackendModelID returns the model identifier passed to Ollama.
func (p *Provider) BackendModelID() string { return p.descriptor.BackendModelID }

// DisplayName returns the short model name for UIs.
func (p *Provider) DisplayName() string { return p.descriptor.DisplayName }

// ProviderLabel returns the catalog label this handle was resolved from.
func (p *Provider) ProviderLabel() string { return p.descriptor.Label }

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response  string `json:"response"`
	EvalCount int    `json:"eval_count"`
}

// GenerateSummary asks the local server for a summary. It probes first
// and short-circuits with an unavailable outcome rather than wasting a
// long-timeout round trip on a known-dead backend.
func (p *Provider) GenerateSummary(ctx context.Context, text string, maxLengthWords int) types.SummaryOutcome {
	if !p.Available(ctx) {
		return types.FailedOutcome(p.descriptor.Label, catalog.ProviderNameLocal,
			types.ErrCodeUnavailable,
			fmt.Sprintf("Ollama model %q not available; ensure Ollama is running and the model is installed", p.descriptor.BackendModelID),
			0)
	}

	payload := generateRequest{
		Model:  p.descriptor.BackendModelID,
		Prompt: common.SummaryPrompt(text, maxLengthWords),
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			TopP:        topP,
			NumPredict:  common.MaxOutputTokens(maxLengthWords),
		},
	}

	start := time.Now()
	resp, err := p.client.PostJSON(ctx, p.baseURL+"/api/generate", payload, nil)
	if err != nil {
		return p.failedOutcome(err, time.Since(start))
	}

	var parsed generateResponse
	if err := internalhttp.DecodeJSON(resp, &parsed); err != nil {
		return p.failedOutcome(err, time.Since(start))
	}
	elapsed := time.Since(start)

	outcome := types.SummaryOutcome{
		Summary:        strings.TrimSpace(parsed.Response),
		Succeeded:      true,
		ElapsedSeconds: elapsed.Seconds(),
		Label:          p.descriptor.Label,
		ProviderName:   catalog.ProviderNameLocal,
	}
	if parsed.EvalCount > 0 {
		tokens := parsed.EvalCount
		outcome.TokenCount = &tokens
	}
	return outcome
}

func (p *Provider) failedOutcome(err error, elapsed time.Duration) types.SummaryOutcome {
	label := p.descriptor.Label
	seconds := elapsed.Seconds()

	var apiErr *internalhttp.APIError
	if errors.As(err, &apiErr) {
		return types.FailedOutcome(label, catalog.ProviderNameLocal, types.ErrCodeBackendError,
			fmt.Sprintf("Ollama API error: %d %s", apiErr.StatusCode, apiErr.Message), seconds)
	}

	if isTimeout(err) {
		return types.FailedOutcome(label, catalog.ProviderNameLocal, types.ErrCodeTimeout,
			"Ollama request timed out; the model may be too large for available resources", seconds)
	}

	return types.FailedOutcome(label, catalog.ProviderNameLocal, types.ErrCodeNetwork,
		fmt.Sprintf("Ollama request failed: %v", err), seconds)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return false
}
