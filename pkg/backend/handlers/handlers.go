package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cecil-the-coder/summary-kit/pkg/backendtypes"
	"github.com/cecil-the-coder/summary-kit/pkg/catalog"
	"github.com/cecil-the-coder/summary-kit/pkg/extract"
	"github.com/cecil-the-coder/summary-kit/pkg/providers/ollama"
	"github.com/cecil-the-coder/summary-kit/pkg/types"
)

// ProviderDirectory is the slice of the manager the handlers need.
type ProviderDirectory interface {
	ListAllLabels() []string
	ListEnabledLabels(ctx context.Context) []string
	UpdateAPIKey(key string)
	LocalStatus(ctx context.Context) ollama.Status
}

// Summarizer runs one fan-out summarization request.
type Summarizer interface {
	Dispatch(ctx context.Context, labels []string, text string, maxLengthWords int) (types.AggregateResult, error)
}

// Handler serves the summary-kit API endpoints
type Handler struct {
	directory  ProviderDirectory
	summarizer Summarizer
	version    string
	startTime  time.Time
}

func New(directory ProviderDirectory, summarizer Summarizer, version string) *Handler {
	return &Handler{
		directory:  directory,
		summarizer: summarizer,
		version:    version,
		startTime:  time.Now(),
	}
}

// Health handles GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	enabled := h.directory.ListEnabledLabels(r.Context())
	SendSuccess(w, r, http.StatusOK, backendtypes.HealthResponse{
		Status:           "healthy",
		Version:          h.version,
		Uptime:           time.Since(h.startTime).Round(time.Second).String(),
		EnabledProviders: len(enabled),
	})
}

// ListProviders handles GET /api/providers. With ?enabled=true only
// providers that can currently serve requests are returned.
func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	var labels []string
	if r.URL.Query().Get("enabled") == "true" {
		labels = h.directory.ListEnabledLabels(r.Context())
	} else {
		labels = h.directory.ListAllLabels()
	}

	infos := make([]backendtypes.ProviderInfo, 0, len(labels))
	for _, label := range labels {
		desc, ok := catalog.Lookup(label)
		if !ok {
			continue
		}
		infos = append(infos, backendtypes.ProviderInfo{
			Label:          desc.Label,
			BackendModelID: desc.BackendModelID,
			DisplayName:    desc.DisplayName,
			Origin:         desc.Origin,
			Kind:           desc.Kind,
		})
	}

	SendSuccess(w, r, http.StatusOK, backendtypes.ProviderListResponse{
		Providers: infos,
		Count:     len(infos),
	})
}

// OllamaStatus handles GET /api/ollama/status
func (h *Handler) OllamaStatus(w http.ResponseWriter, r *http.Request) {
	SendSuccess(w, r, http.StatusOK, h.directory.LocalStatus(r.Context()))
}

// UpdateAPIKey handles PUT /api/config/apikey. An empty key clears the
// stored credential, disabling the cloud providers.
func (h *Handler) UpdateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req backendtypes.UpdateAPIKeyRequest
	if err := ParseJSON(r, &req); err != nil {
		SendError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	h.directory.UpdateAPIKey(strings.TrimSpace(req.APIKey))
	SendSuccess(w, r, http.StatusOK, map[string]bool{
		"configured": strings.TrimSpace(req.APIKey) != "",
	})
}

// Summarize handles POST /api/summarize
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req backendtypes.SummarizeRequest
	if err := ParseJSON(r, &req); err != nil {
		SendError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	result, err := h.summarizer.Dispatch(r.Context(), req.Providers, req.Text, req.MaxLengthWords)
	if err != nil {
		var perr *types.ProviderError
		if errors.As(err, &perr) {
			SendError(w, r, http.StatusBadRequest, string(perr.Code), perr.Message)
			return
		}
		SendError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	SendSuccess(w, r, http.StatusOK, result)
}

// ListSamples handles GET /api/documents/samples
func (h *Handler) ListSamples(w http.ResponseWriter, r *http.Request) {
	docs := extract.SampleDocuments()

	titles := make([]string, 0, len(docs))
	for title := range docs {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	infos := make([]backendtypes.SampleDocumentInfo, 0, len(titles))
	for _, title := range titles {
		text := docs[title]
		infos = append(infos, backendtypes.SampleDocumentInfo{
			Title:     title,
			WordCount: len(strings.Fields(text)),
			Text:      text,
		})
	}

	SendSuccess(w, r, http.StatusOK, map[string]interface{}{
		"documents": infos,
		"count":     len(infos),
	})
}
