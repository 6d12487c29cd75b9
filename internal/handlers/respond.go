// Package handlers implements the JSON API for markdown conversion,
// share creation and retrieval, file management, and the admin access
// gate, plus the public preview page.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError sends the uniform failure envelope. Messages are short and
// stable; internal errors are logged, never echoed.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON parses the request body into dst. Bodies truncated by the
// boundary size cap surface as an oversize error rather than a generic
// parse failure.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errOversizeBody
		}
		return err
	}
	return nil
}

// errOversizeBody marks a request rejected by the boundary size cap.
var errOversizeBody = errors.New("request body too large")
