package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryPrompt(t *testing.T) {
	prompt := SummaryPrompt("some document text", 100)

	assert.Contains(t, prompt, "approximately 100 words")
	assert.Contains(t, prompt, "some document text")
	assert.Contains(t, prompt, "Summary:")
}

func TestSummaryPrompt_DefaultsLength(t *testing.T) {
	assert.Contains(t, SummaryPrompt("text", 0), "approximately 150 words")
	assert.Contains(t, SummaryPrompt("text", -5), "approximately 150 words")
}

func TestMaxOutputTokens(t *testing.T) {
	assert.Equal(t, 300, MaxOutputTokens(150))
	assert.Equal(t, 20, MaxOutputTokens(10))
	assert.Equal(t, 300, MaxOutputTokens(0))
}
