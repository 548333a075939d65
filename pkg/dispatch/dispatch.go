// Package dispatch fans a single summarization request out to a set of
// resolved providers and aggregates the per-provider outcomes into one
// deterministic result.
package dispatch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cecil-the-coder/summary-kit/pkg/providers/common"
	"github.com/cecil-the-coder/summary-kit/pkg/types"
	"github.com/cecil-the-coder/summary-kit/pkg/validate"
)

// Resolver resolves a catalog label to a live provider handle. The
// Manager satisfies it; tests substitute their own.
type Resolver interface {
	Resolve(label string) (types.SummaryProvider, bool)
}

// Dispatcher runs multi-provider dispatches. It holds no per-dispatch
// state; statistics are recomputed from each outcome sequence.
type Dispatcher struct {
	resolver      Resolver
	limits        validate.Limits
	defaultLength int
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithDefaultLength overrides the summary length used when a request
// does not specify one.
func WithDefaultLength(words int) Option {
	return func(d *Dispatcher) {
		if words > 0 {
			d.defaultLength = words
		}
	}
}

// New creates a Dispatcher over resolver with the given validation limits.
func New(resolver Resolver, limits validate.Limits, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		resolver:      resolver,
		limits:        limits,
		defaultLength: common.DefaultMaxLengthWords,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch invokes every selected provider concurrently and returns one
// outcome per requested label, in request order. Duplicated labels
// produce duplicated outcomes; deduplication is the caller's concern.
// Only input validation can fail the whole operation; every provider
// failure is captured as data inside its outcome, and one provider's
// failure never affects a sibling's.
func (d *Dispatcher) Dispatch(ctx context.Context, labels []string, text string, maxLengthWords int) (types.AggregateResult, error) {
	if len(labels) == 0 {
		return types.AggregateResult{}, types.NewInvalidInputError("no providers selected")
	}
	if _, err := validate.WordCount(text, d.limits); err != nil {
		return types.AggregateResult{}, types.NewInvalidInputError(err.Error()).WithOriginalErr(err)
	}
	if maxLengthWords <= 0 {
		maxLengthWords = d.defaultLength
	}

	// Pre-sized slot per request index: goroutines write disjoint
	// elements, so reassembly in request order needs no extra
	// synchronization.
	outcomes := make([]types.SummaryOutcome, len(labels))

	g, gctx := errgroup.WithContext(ctx)
	for i, label := range labels {
		provider, ok := d.resolver.Resolve(label)
		if !ok {
			outcomes[i] = types.FailedOutcome(label, "Unknown",
				types.ErrCodeUnknownProvider,
				fmt.Sprintf("provider %q not found", label), 0)
			continue
		}

		i, provider := i, provider
		g.Go(func() error {
			outcomes[i] = provider.GenerateSummary(gctx, text, maxLengthWords)
			return nil
		})
	}

	// Workers never return errors; Wait only fences the slot writes.
	_ = g.Wait()

	return types.AggregateResult{
		Outcomes: outcomes,
		Stats:    types.ComputeStats(outcomes),
	}, nil
}
