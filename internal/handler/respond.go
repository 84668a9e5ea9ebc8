package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/ctxkeys"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError renders the uniform error body. Internal failures are logged
// with their cause; the client only ever sees the public message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", ctxkeys.RequestID(r.Context()),
		)
	}
	respondJSON(w, status, map[string]string{"error": apperr.PublicMessage(err)})
}

// decodeJSON parses a request body, treating malformed JSON as a validation
// failure rather than a server error.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}
