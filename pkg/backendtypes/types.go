// Package backendtypes holds the request and response DTOs for the
// summary-kit HTTP surface, kept separate from the handlers so other
// clients can share them.
package backendtypes

import (
	"time"

	"github.com/cecil-the-coder/summary-kit/pkg/types"
)

// APIResponse is the standard response wrapper
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SummarizeRequest is the body of POST /api/summarize
type SummarizeRequest struct {
	Text           string   `json:"text"`
	Providers      []string `json:"providers"`
	MaxLengthWords int      `json:"max_length_words,omitempty"`
}

// UpdateAPIKeyRequest is the body of PUT /api/config/apikey. An empty
// key is allowed and clears the configured credential.
type UpdateAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// ProviderInfo describes one catalog entry in listing responses
type ProviderInfo struct {
	Label          string             `json:"label"`
	BackendModelID string             `json:"backend_model_id"`
	DisplayName    string             `json:"display_name"`
	Origin         string             `json:"origin"`
	Kind           types.ProviderKind `json:"kind"`
}

// ProviderListResponse for GET /api/providers
type ProviderListResponse struct {
	Providers []ProviderInfo `json:"providers"`
	Count     int            `json:"count"`
}

// HealthResponse for GET /api/health
type HealthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	EnabledProviders int    `json:"enabled_providers"`
}

// SampleDocumentInfo describes one built-in sample document
type SampleDocumentInfo struct {
	Title     string `json:"title"`
	WordCount int    `json:"word_count"`
	Text      string `json:"text,omitempty"`
}
