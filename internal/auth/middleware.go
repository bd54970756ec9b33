package auth

import (
	"encoding/json"
	"net/http"

	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

type unauthorizedBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RequireUser rejects requests without a valid session with 401 and puts
// the session user on the request context otherwise.
func RequireUser(sessions *Sessions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := sessions.FromRequest(r)
		if err != nil {
			logging.Info(logging.FromContext(r.Context(), nil), "unauthenticated request",
				logging.FieldPath, r.URL.Path,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(unauthorizedBody{
				Error:   "Unauthorized",
				Message: "You must be logged in to access this resource",
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
