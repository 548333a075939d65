// Package common holds helpers shared by the provider implementations.
package common

import "fmt"

// DefaultMaxLengthWords is the target summary length used when the
// caller does not specify one.
const DefaultMaxLengthWords = 150

// SummaryPrompt builds the instruction-style prompt sent to every
// backend. Both variants use the identical template so results are
// comparable across providers.
func SummaryPrompt(text string, maxLengthWords int) string {
	if maxLengthWords <= 0 {
		maxLengthWords = DefaultMaxLengthWords
	}
	return fmt.Sprintf("Please provide a concise summary of the following text in approximately %d words. "+
		"Focus on the main points and key information:\n\n%s\n\nSummary:", maxLengthWords, text)
}

// MaxOutputTokens converts a word target into the token ceiling passed
// to the backend. Two tokens per requested word leaves headroom for
// subword tokenization.
func MaxOutputTokens(maxLengthWords int) int {
	if maxLengthWords <= 0 {
		maxLengthWords = DefaultMaxLengthWords
	}
	return maxLengthWords * 2
}
