package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/cecil-the-coder/summary-kit/pkg/testutil"
	"github.com/cecil-the-coder/summary-kit/pkg/types"
	"github.com/cecil-the-coder/summary-kit/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver resolves from a fixed label-to-provider map.
type mapResolver map[string]types.SummaryProvider

func (r mapResolver) Resolve(label string) (types.SummaryProvider, bool) {
	p, ok := r[label]
	return p, ok
}

func validText() string { return testutil.Words(100) }

func newDispatcher(providers mapResolver) *Dispatcher {
	return New(providers, validate.DefaultLimits())
}

func TestDispatch_OneOutcomePerLabelInRequestOrder(t *testing.T) {
	resolver := mapResolver{
		"a": testutil.NewStubProvider("a", "summary a"),
		"b": testutil.NewStubProvider("b", "summary b"),
		"c": testutil.NewStubProvider("c", "summary c"),
	}
	d := newDispatcher(resolver)

	labels := []string{"c", "a", "b"}
	result, err := d.Dispatch(context.Background(), labels, validText(), 100)

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, "c", result.Outcomes[0].Label)
	assert.Equal(t, "a", result.Outcomes[1].Label)
	assert.Equal(t, "b", result.Outcomes[2].Label)
}

func TestDispatch_DuplicateLabelsProduceDuplicateOutcomes(t *testing.T) {
	stub := testutil.NewStubProvider("a", "summary a")
	d := newDispatcher(mapResolver{"a": stub})

	result, err := d.Dispatch(context.Background(), []string{"a", "a", "a"}, validText(), 100)

	require.NoError(t, err)
	assert.Len(t, result.Outcomes, 3)
	assert.Equal(t, 3, stub.Calls())
	assert.Equal(t, 3, result.Stats.Total)
}

func TestDispatch_OrderPreservedRegardlessOfCompletionOrder(t *testing.T) {
	slow := testutil.NewStubProvider("slow", "slow summary")
	slow.Delay = 80 * time.Millisecond
	fast := testutil.NewStubProvider("fast", "fast summary")

	d := newDispatcher(mapResolver{"slow": slow, "fast": fast})
	result, err := d.Dispatch(context.Background(), []string{"slow", "fast"}, validText(), 100)

	require.NoError(t, err)
	assert.Equal(t, "slow", result.Outcomes[0].Label)
	assert.Equal(t, "fast", result.Outcomes[1].Label)
}

func TestDispatch_RunsConcurrently(t *testing.T) {
	const delay = 60 * time.Millisecond
	resolver := mapResolver{}
	labels := make([]string, 0, 4)
	for _, name := range []string{"a", "b", "c", "d"} {
		stub := testutil.NewStubProvider(name, "s")
		stub.Delay = delay
		resolver[name] = stub
		labels = append(labels, name)
	}
	d := newDispatcher(resolver)

	start := time.Now()
	_, err := d.Dispatch(context.Background(), labels, validText(), 100)
	elapsed := time.Since(start)

	require.NoError(t, err)
	// Bounded by the slowest provider, not the sum of all four.
	assert.Less(t, elapsed, 3*delay)
}

func TestDispatch_UnknownLabelSynthesizesOutcome(t *testing.T) {
	known := testutil.NewStubProvider("known", "summary")
	d := newDispatcher(mapResolver{"known": known})

	result, err := d.Dispatch(context.Background(), []string{"known", "missing"}, validText(), 100)

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)

	missing := result.Outcomes[1]
	assert.False(t, missing.Succeeded)
	require.NotNil(t, missing.ErrorKind)
	assert.Equal(t, types.ErrCodeUnknownProvider, *missing.ErrorKind)
	assert.Equal(t, "missing", missing.Label)
	assert.Equal(t, 1, result.Stats.Succeeded)
	assert.Equal(t, 1, result.Stats.Failed)
}

func TestDispatch_SiblingFailureIsolation(t *testing.T) {
	failing := testutil.NewStubProvider("bad", "")
	failing.Outcome = types.FailedOutcome("bad", "Stub (Test)", types.ErrCodeBackendError, "boom", 0.2)
	healthy := testutil.NewStubProvider("good", "fine summary")

	d := newDispatcher(mapResolver{"bad": failing, "good": healthy})
	result, err := d.Dispatch(context.Background(), []string{"bad", "good"}, validText(), 100)

	require.NoError(t, err)
	assert.False(t, result.Outcomes[0].Succeeded)
	assert.True(t, result.Outcomes[1].Succeeded)
	assert.Equal(t, "fine summary", result.Outcomes[1].Summary)
}

func TestDispatch_AllFailedStillStructurallyValid(t *testing.T) {
	failing := testutil.NewStubProvider("bad", "")
	failing.Outcome = types.FailedOutcome("bad", "Stub (Test)", types.ErrCodeTimeout, "timed out", 1.5)

	d := newDispatcher(mapResolver{"bad": failing})
	result, err := d.Dispatch(context.Background(), []string{"bad", "bad"}, validText(), 100)

	require.NoError(t, err, "a fully failed dispatch is not a hard failure")
	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 0, result.Stats.Succeeded)
	assert.Equal(t, 2, result.Stats.Failed)
	assert.Equal(t, 0.0, result.Stats.AverageElapsedSeconds)
}

func TestDispatch_EmptyLabelSetFailsFast(t *testing.T) {
	d := newDispatcher(mapResolver{})

	_, err := d.Dispatch(context.Background(), nil, validText(), 100)

	require.Error(t, err)
	var pErr *types.ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, types.ErrCodeInvalidInput, pErr.Code)
}

func TestDispatch_InvalidTextFailsFastWithoutBackendCalls(t *testing.T) {
	stub := testutil.NewStubProvider("a", "summary")
	d := newDispatcher(mapResolver{"a": stub})

	tests := []struct {
		name string
		text string
	}{
		{"blank", "   \n\t"},
		{"too short", testutil.Words(49)},
		{"too long", testutil.Words(10001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), []string{"a"}, tt.text, 100)

			require.Error(t, err)
			var pErr *types.ProviderError
			require.ErrorAs(t, err, &pErr)
			assert.Equal(t, types.ErrCodeInvalidInput, pErr.Code)
		})
	}

	assert.Equal(t, 0, stub.Calls(), "validation failures must precede any backend call")
}

func TestDispatch_ContextCancellationYieldsTimeoutOutcomes(t *testing.T) {
	slow := testutil.NewStubProvider("slow", "late summary")
	slow.Delay = 500 * time.Millisecond

	d := newDispatcher(mapResolver{"slow": slow})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	result, err := d.Dispatch(ctx, []string{"slow", "slow"}, validText(), 100)

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2, "every requested label produces exactly one outcome")
	for _, o := range result.Outcomes {
		assert.False(t, o.Succeeded)
		require.NotNil(t, o.ErrorKind)
		assert.Equal(t, types.ErrCodeTimeout, *o.ErrorKind)
	}
}

func TestDispatch_DefaultsMaxLength(t *testing.T) {
	stub := testutil.NewStubProvider("a", "summary")
	d := newDispatcher(mapResolver{"a": stub})

	_, err := d.Dispatch(context.Background(), []string{"a"}, validText(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.Calls())
}

// lengthRecorder wraps a stub to capture the requested summary length.
type lengthRecorder struct {
	*testutil.StubProvider
	gotLength int
}

func (l *lengthRecorder) GenerateSummary(ctx context.Context, text string, maxLengthWords int) types.SummaryOutcome {
	l.gotLength = maxLengthWords
	return l.StubProvider.GenerateSummary(ctx, text, maxLengthWords)
}

func TestDispatch_WithDefaultLengthOption(t *testing.T) {
	rec := &lengthRecorder{StubProvider: testutil.NewStubProvider("a", "summary")}
	d := New(mapResolver{"a": rec}, validate.DefaultLimits(), WithDefaultLength(80))

	_, err := d.Dispatch(context.Background(), []string{"a"}, validText(), 0)
	require.NoError(t, err)
	assert.Equal(t, 80, rec.gotLength)

	_, err = d.Dispatch(context.Background(), []string{"a"}, validText(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, rec.gotLength, "an explicit length wins over the default")
}

func TestDispatch_StatsMatchOutcomes(t *testing.T) {
	tokens := 120
	succeeding := testutil.NewStubProvider("ok", "summary")
	succeeding.Outcome.TokenCount = &tokens
	succeeding.Outcome.ElapsedSeconds = 2.0

	d := newDispatcher(mapResolver{"ok": succeeding})
	result, err := d.Dispatch(context.Background(), []string{"ok", "nope"}, validText(), 100)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 1, result.Stats.Succeeded)
	assert.Equal(t, 1, result.Stats.Failed)
	assert.Equal(t, 2.0, result.Stats.AverageElapsedSeconds)
	assert.Equal(t, 120, result.Stats.TotalTokens)
}
