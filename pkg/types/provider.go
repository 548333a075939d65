package types

import "context"

// ProviderKind distinguishes the two backend variants.
type ProviderKind string

const (
	KindCloud ProviderKind = "cloud"
	KindLocal ProviderKind = "local"
)

// ProviderDescriptor is an immutable catalog record mapping a
// human-readable label to a backend-specific model identifier.
// Descriptors are defined at process start and never mutated.
type ProviderDescriptor struct {
	// Label is the unique human-facing identifier, e.g. "Groq - Llama 3.1 8B".
	Label string `json:"label"`

	// BackendModelID is the identifier passed to the backend,
	// e.g. "llama-3.1-8b-instant" or "llama3.1:8b".
	BackendModelID string `json:"backend_model_id"`

	// DisplayName is the short model name shown to users, e.g. "Llama 3.1 8B".
	DisplayName string `json:"display_name"`

	// Origin is the organization that produced the model, e.g. "Meta".
	Origin string `json:"origin"`

	Kind ProviderKind `json:"kind"`
}

// SummaryProvider is the polymorphic capability implemented by both
// backend variants. Implementations never return Go errors from these
// methods: availability checks answer with a plain bool and generation
// failures are captured as data inside the SummaryOutcome so that one
// provider's failure can never abort a sibling call.
type SummaryProvider interface {
	// Available reports whether the backend is currently usable.
	// The cloud variant answers from configuration alone (credential
	// present); the local variant performs a short liveness probe.
	Available(ctx context.Context) bool

	// GenerateSummary asks the backend for a summary of text targeting
	// approximately maxLengthWords words. It records wall-clock elapsed
	// time around the request regardless of outcome.
	GenerateSummary(ctx context.Context, text string, maxLengthWords int) SummaryOutcome

	// Identity accessors, pure reads from the descriptor.
	BackendModelID() string
	DisplayName() string
	ProviderLabel() string
}
