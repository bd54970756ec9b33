package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/PEEKING-web/steam-tracker/internal/auth"
	"github.com/PEEKING-web/steam-tracker/internal/http/handlers"
	"github.com/PEEKING-web/steam-tracker/internal/http/middleware"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
)

// RouterConfig carries the cross-cutting settings for NewRouter.
type RouterConfig struct {
	FrontendURL       string
	Sessions          *auth.Sessions
	RecommendRequests int
	RecommendWindow   time.Duration
	Logger            *slog.Logger
	Recorder          *metrics.Recorder
}

// NewRouter registers HTTP routes on a ServeMux and wraps it with logging
// and CORS.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	mux := nethttp.NewServeMux()
	protected := func(fn nethttp.HandlerFunc) nethttp.Handler {
		return auth.RequireUser(cfg.Sessions, fn)
	}

	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("GET /auth/steam", h.SteamLogin)
	mux.HandleFunc("GET /auth/steam/return", h.SteamReturn)
	mux.HandleFunc("GET /auth/logout", h.Logout)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/check", h.AuthCheck)

	mux.Handle("GET /api/user/profile", protected(h.Profile))

	mux.Handle("GET /api/games/owned", protected(h.OwnedGames))
	mux.Handle("GET /api/games/recent", protected(h.RecentGames))
	mux.Handle("GET /api/games/{appId}/achievements", protected(h.GameAchievements))

	mux.Handle("GET /api/stats/total-playtime", protected(h.TotalPlaytime))
	mux.Handle("GET /api/stats/weekly-playtime", protected(h.WeeklyPlaytime))
	mux.Handle("GET /api/stats/achievements", protected(h.RecentAchievements))
	mux.Handle("GET /api/stats/level", protected(h.Level))

	mux.Handle("GET /api/friends/list", protected(h.FriendsList))
	mux.Handle("GET /api/friends/{steamId}/profile", protected(h.FriendProfile))
	mux.Handle("GET /api/friends/{steamId}/games", protected(h.FriendGames))

	mux.Handle("GET /api/categories", protected(h.ListCategories))
	mux.Handle("POST /api/categories", protected(h.CreateCategory))
	mux.Handle("POST /api/categories/{id}/games", protected(h.AddCategoryGame))
	mux.Handle("DELETE /api/categories/{id}/games/{appid}", protected(h.RemoveCategoryGame))
	mux.Handle("PATCH /api/categories/{id}", protected(h.RenameCategory))
	mux.Handle("DELETE /api/categories/{id}", protected(h.DeleteCategory))

	mux.Handle("POST /api/sessions/start", protected(h.StartSession))
	mux.Handle("POST /api/sessions/end/{id}", protected(h.EndSession))
	mux.Handle("GET /api/sessions", protected(h.ListSessions))
	mux.Handle("GET /api/sessions/game/{appid}", protected(h.ListGameSessions))

	limit := middleware.RateLimit(cfg.RecommendRequests, cfg.RecommendWindow, keyByUserOrIP)
	mux.Handle("POST /api/recommendations/suggest", protected(limit(nethttp.HandlerFunc(h.Suggest)).ServeHTTP))

	var handler nethttp.Handler = mux
	handler = middleware.CORS(cfg.FrontendURL)(handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, cfg.Recorder, handler)
	return handler
}

// keyByUserOrIP buckets signed-in users by Steam ID so a shared NAT does not
// starve them; anonymous callers fall back to their address.
func keyByUserOrIP(r *nethttp.Request) (string, error) {
	if u, ok := auth.UserFromContext(r.Context()); ok && u.SteamID != "" {
		return "user:" + u.SteamID, nil
	}
	return httprate.KeyByIP(r)
}
