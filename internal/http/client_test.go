package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"llama3.1:8b"}`))
	}))
	defer server.Close()

	client := NewClient(Config{Timeout: 5 * time.Second})

	var result struct {
		Name string `json:"name"`
	}
	err := client.GetJSON(context.Background(), server.URL, &result)

	require.NoError(t, err)
	assert.Equal(t, "llama3.1:8b", result.Name)
}

func TestClient_RetriesRetryableStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		Timeout:        5 * time.Second,
		MaxRetries:     3,
		BaseRetryDelay: time.Millisecond,
	})

	var result struct {
		OK bool `json:"ok"`
	}
	err := client.GetJSON(context.Background(), server.URL, &result)

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		Timeout:        5 * time.Second,
		MaxRetries:     3,
		BaseRetryDelay: time.Millisecond,
	})

	var result struct{}
	err := client.GetJSON(context.Background(), server.URL, &result)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid api key", apiErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_PostJSON_SendsHeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "summary-kit/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{Timeout: 5 * time.Second})

	resp, err := client.PostJSON(context.Background(), server.URL,
		map[string]string{"model": "llama3-8b-8192"},
		map[string]string{"Authorization": "Bearer test-key"})

	require.NoError(t, err)
	DrainAndClose(resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_ContextCancellationStopsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{
		Timeout:        5 * time.Second,
		MaxRetries:     10,
		BaseRetryDelay: 50 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	var result struct{}
	err := client.GetJSON(ctx, server.URL, &result)
	require.Error(t, err)
}

func TestNewAPIError_FallsBackToStatusText(t *testing.T) {
	err := NewAPIError(http.StatusBadGateway, "")
	assert.Equal(t, "Bad Gateway", err.Message)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
}
