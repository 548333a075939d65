// Package extract defines the document extraction collaborator
// contract. The core only consumes extracted text; file-format
// internals (PDF parsing in particular) live behind the Extractor
// interface and are out of scope here.
package extract

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// Metadata describes an extracted document.
type Metadata struct {
	PageCount int   `json:"page_count"`
	WordCount int   `json:"word_count"`
	CharCount int   `json:"char_count"`
	FileSize  int64 `json:"file_size"`
}

// Result carries the extracted text and its metadata.
type Result struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// ErrNoText is returned when a document yields no text content.
var ErrNoText = errors.New("no text content found in document")

// Extractor turns raw file bytes into text plus metadata.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) (Result, error)
}

// PlainText extracts plain-text documents (.txt, .md). It treats the
// whole file as one page.
type PlainText struct{}

// Extract implements Extractor for plain-text bytes.
func (PlainText) Extract(_ context.Context, _ string, data []byte) (Result, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return Result{}, ErrNoText
	}

	return Result{
		Text: text,
		Metadata: Metadata{
			PageCount: 1,
			WordCount: len(strings.Fields(text)),
			CharCount: utf8.RuneCountInString(text),
			FileSize:  int64(len(data)),
		},
	}, nil
}
