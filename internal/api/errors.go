package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/joestump/stack-underflow/internal/store"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeAppError maps a store error to its status and message. Anything that
// is not an AppError is logged and reported as a 500.
func writeAppError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if appErr, ok := store.AsAppError(err); ok {
		writeError(w, appErr.Status(), appErr.Message())
		return
	}
	logger.Error("unclassified error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
