// Package handlers implements the HTTP handlers for the summary-kit API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cecil-the-coder/summary-kit/pkg/backend/middleware"
	"github.com/cecil-the-coder/summary-kit/pkg/backendtypes"
)

// SendSuccess writes a successful JSON response
func SendSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeResponse(w, status, backendtypes.APIResponse{
		Success:   true,
		Data:      data,
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC(),
	})
}

// SendError writes an error JSON response
func SendError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeResponse(w, status, backendtypes.APIResponse{
		Success: false,
		Error: &backendtypes.APIError{
			Code:    code,
			Message: message,
		},
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC(),
	})
}

// ParseJSON decodes the request body into dst, rejecting unknown fields.
func ParseJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeResponse(w http.ResponseWriter, status int, resp backendtypes.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
