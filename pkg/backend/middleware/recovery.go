package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"

	"github.com/cecil-the-coder/summary-kit/pkg/backendtypes"
)

// Recovery converts panics into a 500 JSON response so a single bad
// request cannot take the server down.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Str("request_id", GetRequestID(r.Context())).
						Interface("panic", rec).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(backendtypes.APIResponse{
						Success: false,
						Error: &backendtypes.APIError{
							Code:    "internal_error",
							Message: "internal server error",
						},
						RequestID: GetRequestID(r.Context()),
						Timestamp: time.Now().UTC(),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
