package types

// SummaryOutcome is the result of one generation attempt against one
// backend. Failures are data, not errors: ErrorKind is set if and only
// if Succeeded is false, and TokenCount is only ever set when the call
// succeeded (a backend that fails never reports usage).
type SummaryOutcome struct {
	Summary        string  `json:"summary"`
	Succeeded      bool    `json:"succeeded"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`

	// TokenCount is nil when the backend does not report usage.
	TokenCount *int `json:"token_count,omitempty"`

	// Label is the catalog label this outcome belongs to.
	Label string `json:"label"`

	// ProviderName is the origin backend, e.g. "Groq (Cloud)" or
	// "Ollama (Local)".
	ProviderName string `json:"provider_name"`

	ErrorKind   *ErrorCode `json:"error_kind,omitempty"`
	ErrorDetail string     `json:"error_detail,omitempty"`
}

// FailedOutcome builds a failed SummaryOutcome for the given label and
// provider name. The summary text carries the human-readable message,
// matching the shape successful outcomes have.
func FailedOutcome(label, providerName string, code ErrorCode, detail string, elapsedSeconds float64) SummaryOutcome {
	return SummaryOutcome{
		Summary:        detail,
		Succeeded:      false,
		ElapsedSeconds: elapsedSeconds,
		Label:          label,
		ProviderName:   providerName,
		ErrorKind:      &code,
		ErrorDetail:    detail,
	}
}

// AggregateStats are derived statistics over one dispatch. They are a
// pure function of the outcome sequence; nothing is carried between
// dispatches.
type AggregateStats struct {
	Total                 int     `json:"total"`
	Succeeded             int     `json:"succeeded"`
	Failed                int     `json:"failed"`
	AverageElapsedSeconds float64 `json:"average_elapsed_seconds"`
	TotalTokens           int     `json:"total_tokens"`
}

/// AggregateResult is the envelope produced by one dispatch: outcomes in
// request order plus the derived statistics block.
type AggregateResult struct {
	Outcomes []SummaryOutcome `json:"outcomes"`
	Stats    AggregateStats   `json:"stats"`
}

// ComputeStats derives AggregateStats from an outcome sequence.
// AverageElapsedSeconds is the mean over successful outcomes only and
// exactly 0 when there are none. TotalTokens sums the reported token
// counts of successful outcomes, treating absent counts as 0.
func ComputeStats(outcomes []SummaryOutcome) AggregateStats {
	stats := AggregateStats{Total: len(outcomes)}

	var elapsedSum float64
	for _, o := range outcomes {
		if !o.Succeeded {
			continue
		}
		stats.Succeeded++
		elapsedSum += o.ElapsedSeconds
		if o.TokenCount != nil {
			stats.TotalTokens += *o.TokenCount
		}
	}

	stats.Failed = stats.Total - stats.Succeeded
	if stats.Succeeded > 0 {
		stats.AverageElapsedSeconds = elapsedSum / float64(stats.Succeeded)
	}

	return stats
}
