// Package testutil provides shared fixtures for summary-kit tests: a
// scriptable stub provider and text helpers.
package testutil

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cecil-the-coder/summary-kit/pkg/types"
)

// StubProvider is a scriptable types.SummaryProvider for tests. The
// zero Unavailable value means the stub reports itself available.
type StubProvider struct {
	Label       string
	ModelID     string
	Display     string
	Name        string
	Unavailable bool

	// Outcome is returned from GenerateSummary after Delay elapses
	// (or the context is done, whichever comes first).
	Outcome types.SummaryOutcome
	Delay   time.Duration

	calls int64
}

// NewStubProvider creates an available stub returning a successful outcome.
func NewStubProvider(label, summary string) *StubProvider {
	return &StubProvider{
		Label:   label,
		ModelID: "stub-model",
		Display: "Stub Model",
		Name:    "Stub (Test)",
		Outcome: types.SummaryOutcome{
			Summary:        summary,
			Succeeded:      true,
			ElapsedSeconds: 0.1,
			Label:          label,
			ProviderName:   "Stub (Test)",
		},
	}
}

func (s *StubProvider) Available(_ context.Context) bool { return !s.Unavailable }

func (s *StubProvider) GenerateSummary(ctx context.Context, _ string, _ int) types.SummaryOutcome {
	atomic.AddInt64(&s.calls, 1)
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return types.FailedOutcome(s.Label, s.Name, types.ErrCodeTimeout, "stub canceled", s.Delay.Seconds())
		}
	}
	return s.Outcome
}

func (s *StubProvider) BackendModelID() string { return s.ModelID }
func (s *StubProvider) DisplayName() string    { return s.Display }
func (s *StubProvider) ProviderLabel() string  { return s.Label }

// Calls reports how many times GenerateSummary ran.
func (s *StubProvider) Calls() int {
	return int(atomic.LoadInt64(&s.calls))
}

// Words builds a text of exactly n whitespace-separated words, handy
// for exercising validator bounds.
func Words(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", n))
}
