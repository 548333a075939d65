// Package groq implements the cloud summary provider backed by the
// Groq chat-completions API. Availability is a configuration check
// only: a provider is usable iff it was constructed with a non-empty
// API key. The key is captured at construction time, so replacing the
// process-wide credential never affects an in-flight call.
package groq

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
	// DefaultBaseURL is the OpenAI-compatible Groq endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// defaultTimeout bounds one cloud generation call. Cloud inference
	// is fast; anything past this is treated as a timeout outcome.
	defaultTimeout = 30 * time.Second

	temperature = 0.3
	topP        = 1.0
)

// Provider is the cloud variant of types.SummaryProvider. Handles are
// created per dispatch and hold no state between calls.
type Provider struct {
	descriptor types.ProviderDescriptor
	apiKey     string
	baseURL    string
	client     *internalhttp.Client
}

// Option customizes a Provider, primarily for tests.
type Option func(*Provider)

// WithBaseURL overrides the Groq endpoint.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithClient overrides the shared HTTP client.
func WithClient(client *internalhttp.Client) Option {
	return func(p *Provider) { p.client = client }
}

// New creates a cloud provider bound to one descriptor and the given
// API key snapshot.
func New(descriptor types.ProviderDescriptor, apiKey string, opts ...Option) *Provider {
	p := &Provider{
		descriptor: descriptor,
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		client: internalhttp.NewClient(internalhttp.Config{
			Timeout:    defaultTimeout,
			MaxRetries: 1,
		}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Available reports whether a credential is configured. No network
// call is made; credential validity is only discovered at generation
// time.
func (p *Provider) Available(_ context.Context) bool {
	return p.apiKey != ""
}

// BackendModelID returns the model identifier passed to Groq.
func (p *Provider) BackendModelID() string { return p.descriptor.BackendModelID }

// DisplayName returns the short model name for UIs.
func (p *Provider) DisplayName() string { return p.descriptor.DisplayName }

// ProviderLabel returns the catalog label this handle was resolved from.
func (p *Provider) ProviderLabel() string { return p.descriptor.Label }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// GenerateSummary asks Groq for a summary. Failures never propagate as
// errors; they come back as failed outcomes with a categorized kind.
func (p *Provider) GenerateSummary(ctx context.Context, text string, maxLengthWords int) types.SummaryOutcome {
	if !p.Available(ctx) {
		return types.FailedOutcome(p.descriptor.Label, catalog.ProviderNameCloud,
			types.ErrCodeCredentialMissing, "Groq API key not configured", 0)
	}

	payload := chatCompletionRequest{
		Model:       p.descriptor.BackendModelID,
		Messages:    []chatMessage{{Role: "user", Content: common.SummaryPrompt(text, maxLengthWords)}},
		MaxTokens:   common.MaxOutputTokens(maxLengthWords),
		Temperature: temperature,
		TopP:        topP,
		Stream:      false,
	}

	start := time.Now()
	resp, err := p.client.PostJSON(ctx, p.baseURL+"/chat/completions", payload,
		map[string]string{"Authorization": "Bearer " + p.apiKey})
	if err != nil {
		return p.failedOutcome(err, time.Since(start))
	}

	var parsed chatCompletionResponse
	if err := internalhttp.DecodeJSON(resp, &parsed); err != nil {
		return p.failedOutcome(err, time.Since(start))
	}
	elapsed := time.Since(start)

	if len(parsed.Choices) == 0 {
		return types.FailedOutcome(p.descriptor.Label, catalog.ProviderNameCloud,
			types.ErrCodeBackendError, "Groq response contained no choices", elapsed.Seconds())
	}

	outcome := types.SummaryOutcome{
		Summary:        strings.TrimSpace(parsed.Choices[0].Message.Content),
		Succeeded:      true,
		ElapsedSeconds: elapsed.Seconds(),
		Label:          p.descriptor.Label,
		ProviderName:   catalog.ProviderNameCloud,
	}
	if parsed.Usage != nil {
		tokens := parsed.Usage.TotalTokens
		outcome.TokenCount = &tokens
	}
	return outcome
}

// failedOutcome maps a transport or backend error onto the outcome
// taxonomy: timeout vs transport failure vs non-success status.
func (p *Provider) failedOutcome(err error, elapsed time.Duration) types.SummaryOutcome {
	label := p.descriptor.Label
	seconds := elapsed.Seconds()

	var apiErr *internalhttp.APIError
	if errors.As(err, &apiErr) {
		return types.FailedOutcome(label, catalog.ProviderNameCloud, types.ErrCodeBackendError,
			fmt.Sprintf("Groq API error: %d %s", apiErr.StatusCode, apiErr.Message), seconds)
	}

	if isTimeout(err) {
		return types.FailedOutcome(label, catalog.ProviderNameCloud, types.ErrCodeTimeout,
			"Groq request timed out", seconds)
	}

	return types.FailedOutcome(label, catalog.ProviderNameCloud, types.ErrCodeNetwork,
		fmt.Sprintf("Groq request failed: %v", err), seconds)
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
