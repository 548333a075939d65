package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError represents a non-success response from a backend
type APIError struct {
	StatusCode int
	Message    string
	RawBody    string
	Timestamp  time.Time
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// NewAPIError builds an APIError from a status and raw body, pulling a
// structured message out of common error payload shapes when possible.
func NewAPIError(statusCode int, body string) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		RawBody:    body,
		Timestamp:  time.Now(),
	}

	var errorResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &errorResp); err == nil && errorResp.Error.Message != "" {
		apiErr.Message = errorResp.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(body)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(statusCode)
		}
	}

	return apiErr
}
