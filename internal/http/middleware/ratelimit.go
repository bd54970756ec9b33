package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

// RateLimit caps requests per key within window. A non-positive limit disables it.
func RateLimit(requests int, window time.Duration, key httprate.KeyFunc) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if key == nil {
		key = httprate.KeyByIP
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(limitExceeded),
	)
}

func limitExceeded(w http.ResponseWriter, r *http.Request) {
	logging.Warn(logging.FromContext(r.Context(), nil), "rate limit exceeded",
		logging.FieldPath, r.URL.Path,
	)
	body := map[string]any{"success": false, "error": "too many requests"}
	if id := RequestIDFromContext(r.Context()); id != "" {
		body["requestId"] = id
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(body)
}
