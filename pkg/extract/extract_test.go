package extract

import (
	"context"
	"testing"

	"github.com/cecil-the-coder/summary-kit/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText_Extract(t *testing.T) {
	data := []byte("  hello world from a plain file  \n")

	result, err := PlainText{}.Extract(context.Background(), "doc.txt", data)

	require.NoError(t, err)
	assert.Equal(t, "hello world from a plain file", result.Text)
	assert.Equal(t, 1, result.Metadata.PageCount)
	assert.Equal(t, 6, result.Metadata.WordCount)
	assert.Equal(t, int64(len(data)), result.Metadata.FileSize)
	assert.Equal(t, len("hello world from a plain file"), result.Metadata.CharCount)
}

func TestPlainText_Extract_EmptyFile(t *testing.T) {
	_, err := PlainText{}.Extract(context.Background(), "empty.txt", []byte("   \n\t"))
	assert.ErrorIs(t, err, ErrNoText)
}

func TestSampleDocuments(t *testing.T) {
	samples := SampleDocuments()

	require.Len(t, samples, 3)
	for title, text := range samples {
		count, err := validate.WordCount(text, validate.DefaultLimits())
		assert.NoError(t, err, "sample %q must pass validation", title)
		assert.Greater(t, count, validate.DefaultMinWords)
	}
}

func TestSampleDocument(t *testing.T) {
	text, ok := SampleDocument("AI and Machine Learning")
	require.True(t, ok)
	assert.Contains(t, text, "Artificial Intelligence")

	_, ok = SampleDocument("Nonexistent")
	assert.False(t, ok)
}
