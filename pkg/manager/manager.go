// Package manager resolves catalog labels to live provider handles and
// tracks which labels are currently usable. It owns the process-wide
// cloud credential and the shared probe against the local Ollama
// server.
package manager

import (
	"context"

	"github.com/cecil-the-coder/summary-kit/pkg/catalog"
	"github.com/cecil-the-coder/summary-kit/pkg/providers/groq"
	"github.com/cecil-the-coder/summary-kit/pkg/providers/ollama"
	"github.com/cecil-the-coder/summary-kit/pkg/types"
)

// Manager is the provider factory. Handles it resolves are stateless
// and owned by the call that requested them; the Manager itself is
// safe for concurrent use.
type Manager struct {
	keys          *KeyHolder
	ollamaBaseURL string
	status        *ollama.StatusClient
	groqOpts      []groq.Option
	ollamaOpts    []ollama.Option
}

// Option customizes a Manager.
type Option func(*Manager)

// WithGroqOptions passes options through to every resolved cloud
// handle (tests use this to point at a fake server).
func WithGroqOptions(opts ...groq.Option) Option {
	return func(m *Manager) { m.groqOpts = opts }
}

// WithOllamaOptions passes options through to every resolved local handle.
func WithOllamaOptions(opts ...ollama.Option) Option {
	return func(m *Manager) { m.ollamaOpts = opts }
}

// New creates a Manager. keys must not be nil; ollamaBaseURL may be
// empty for the default local address.
func New(keys *KeyHolder, ollamaBaseURL string, opts ...Option) *Manager {
	m := &Manager{
		keys:          keys,
		ollamaBaseURL: ollamaBaseURL,
		status:        ollama.NewStatusClient(ollamaBaseURL),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListAllLabels returns every catalog label regardless of availability:
// the cloud catalog followed by the local catalog, in definition order.
func (m *Manager) ListAllLabels() []string {
	all := catalog.All()
	labels := make([]string, 0, len(all))
	for _, d := range all {
		labels = append(labels, d.Label)
	}
	return labels
}

// ListEnabledLabels returns the labels that are currently usable.
// Cloud labels are included en masse iff a credential is configured;
// credential presence is the only gate, no cloud call is made. Local
// labels are checked individually
// against one shared tags probe, not one round trip per label.
func (m *Manager) ListEnabledLabels(ctx context.Context) []string {
	enabled := make([]string, 0)

	if m.keys.Configured() {
		for _, d := range catalog.CloudModels() {
			enabled = append(enabled, d.Label)
		}
	}

	status := m.status.Probe(ctx)
	if status.Available {
		installed := make(map[string]bool, len(status.Models))
		for _, name := range status.Models {
			installed[name] = true
		}
		for _, d := range catalog.LocalModels() {
			if installed[d.BackendModelID] {
				enabled = append(enabled, d.Label)
			}
		}
	}

	return enabled
}

// Resolve looks a label up in both catalogs and constructs the matching
// handle bound to the current credential and address configuration.
// Unknown labels return (nil, false), not an error; callers must check.
// Cloud handles capture the credential at resolve time so a concurrent
// UpdateAPIKey cannot leave an in-flight call with an ambiguous error.
func (m *Manager) Resolve(label string) (types.SummaryProvider, bool) {
	descriptor, ok := catalog.Lookup(label)
	if !ok {
		return nil, false
	}

	switch descriptor.Kind {
	case types.KindCloud:
		return groq.New(descriptor, m.keys.Snapshot(), m.groqOpts...), true
	case types.KindLocal:
		return ollama.New(descriptor, m.ollamaBaseURL, m.ollamaOpts...), true
	default:
		return nil, false
	}
}

// UpdateAPIKey replaces the process-wide cloud credential for all
// subsequent resolutions.
func (m *Manager) UpdateAPIKey(key string) {
	m.keys.Set(key)
}

// LocalStatus is a thin pass-through of the local server probe.
func (m *Manager) LocalStatus(ctx context.Context) ollama.Status {
	return m.status.Probe(ctx)
}
