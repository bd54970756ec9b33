package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/PEEKING-web/steam-tracker/internal/http/middleware"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

// envelope is a success body; writeOK adds "success": true.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeOK(w http.ResponseWriter, body envelope, logger *slog.Logger) {
	if body == nil {
		body = envelope{}
	}
	body["success"] = true
	writeJSON(w, http.StatusOK, body, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, envelope{"error": message}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body envelope, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body["success"] = false
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
