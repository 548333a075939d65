// Package validate checks text payloads against word-count bounds
// before dispatch. It is pure: no I/O, no side effects.
package validate

import (
	"fmt"
	"strings"
)

// Default word-count bounds.
const (
	DefaultMinWords = 50
	DefaultMaxWords = 10000
)

// Limits configure the word-count floor and ceiling.
type Limits struct {
	MinWords int
	MaxWords int
}

// DefaultLimits returns the standard bounds.
func DefaultLimits() Limits {
	return Limits{MinWords: DefaultMinWords, MaxWords: DefaultMaxWords}
}

// Error is a validation failure with a stable reason string.
type Error struct {
	Reason    string // "empty", "too short", or "too long"
	Message   string
	WordCount int
}

func (e *Error) Error() string { return e.Message }

// WordCount validates text against limits and returns its word count.
// Blank text (after trimming) fails with "empty"; counts below the
// floor fail with "too short"; counts above the ceiling fail with
// "too long".
func WordCount(text string, limits Limits) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &Error{
			Reason:  "empty",
			Message: "text content is empty",
		}
	}

	count := len(strings.Fields(text))

	if count < limits.MinWords {
		return count, &Error{
			Reason:    "too short",
			Message:   fmt.Sprintf("text too short: minimum %d words required, got %d", limits.MinWords, count),
			WordCount: count,
		}
	}

	if count > limits.MaxWords {
		return count, &Error{
			Reason:    "too long",
			Message:   fmt.Sprintf("text too long: maximum %d words allowed, got %d", limits.MaxWords, count),
			WordCount: count,
		}
	}

	return count, nil
}
