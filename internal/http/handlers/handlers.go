package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/app/categories"
	"github.com/PEEKING-web/steam-tracker/internal/app/friends"
	"github.com/PEEKING-web/steam-tracker/internal/app/library"
	"github.com/PEEKING-web/steam-tracker/internal/app/recommend"
	"github.com/PEEKING-web/steam-tracker/internal/app/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/auth"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
)

type nowFunc func() time.Time

// ProfileLookup loads Steam profiles; used to fill the session user after login.
type ProfileLookup interface {
	FetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]players.PlayerSummary, error)
}

// Deps lists everything the handlers call into.
type Deps struct {
	Library     *library.Service
	Friends     *friends.Service
	Sessions    *sessions.Service
	Categories  *categories.Service
	Recommend   *recommend.Service
	Profiles    ProfileLookup
	Auth        *auth.Sessions
	OpenID      *auth.OpenID
	FrontendURL string
	Logger      *slog.Logger
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	library     *library.Service
	friends     *friends.Service
	sessions    *sessions.Service
	categories  *categories.Service
	recommend   *recommend.Service
	profiles    ProfileLookup
	auth        *auth.Sessions
	openID      *auth.OpenID
	frontendURL string
	logger      *slog.Logger
	now         nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(d Deps) *Handler {
	return &Handler{
		library:     d.Library,
		friends:     d.Friends,
		sessions:    d.Sessions,
		categories:  d.Categories,
		recommend:   d.Recommend,
		profiles:    d.Profiles,
		auth:        d.Auth,
		openID:      d.OpenID,
		frontendURL: d.FrontendURL,
		logger:      d.Logger,
		now:         time.Now,
	}
}

// Root is the banner at /.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": "Steam Tracker API is running! 🚀"}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	}, h.logger)
}

// currentUser returns the session user placed on the context by auth.RequireUser.
func currentUser(r *nethttp.Request) auth.User {
	u, _ := auth.UserFromContext(r.Context())
	return u
}
