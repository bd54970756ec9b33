package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/app/categories"
	"github.com/PEEKING-web/steam-tracker/internal/app/friends"
	"github.com/PEEKING-web/steam-tracker/internal/app/library"
	"github.com/PEEKING-web/steam-tracker/internal/app/recommend"
	"github.com/PEEKING-web/steam-tracker/internal/app/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/auth"
	"github.com/PEEKING-web/steam-tracker/internal/http/handlers"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
	"github.com/PEEKING-web/steam-tracker/internal/oracle"
	"github.com/PEEKING-web/steam-tracker/internal/providers/fixture"
	"github.com/PEEKING-web/steam-tracker/internal/store"
	"github.com/PEEKING-web/steam-tracker/internal/testutil"
)

const testUser = "76561197960287930"

func newTestRouter(t *testing.T, limit int) (http.Handler, *auth.Sessions) {
	t.Helper()
	sess, err := auth.NewSessions(auth.SessionConfig{Secret: strings.Repeat("k", 32), TTL: time.Hour})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	provider := fixture.New()
	ms := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()

	h := handlers.NewHandler(handlers.Deps{
		Library:     library.NewService(provider, logger),
		Friends:     friends.NewService(provider, logger),
		Sessions:    sessions.NewService(ms, logger),
		Categories:  categories.NewService(ms, logger),
		Recommend:   recommend.NewService(provider, recommend.NewReconciler(oracle.Disabled{}, recommend.Options{MaxTokens: 500}, logger, nil), logger),
		Profiles:    provider,
		Auth:        sess,
		OpenID:      auth.NewOpenID("https://steamcommunity.com/openid/login", "http://api.test", "http://api.test/auth/steam/return", nil),
		FrontendURL: "http://app.test",
		Logger:      logger,
	})
	return NewRouter(h, RouterConfig{
		FrontendURL:       "http://app.test",
		Sessions:          sess,
		RecommendRequests: limit,
		RecommendWindow:   time.Minute,
		Logger:            logger,
		Recorder:          metrics.NewRecorder(),
	}), sess
}

func signedIn(t *testing.T, sess *auth.Sessions, req *http.Request) *http.Request {
	t.Helper()
	token, err := sess.Issue(auth.User{SteamID: testUser, DisplayName: "Rabscuttle"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: "steam_tracker_session", Value: token})
	return req
}

func TestRouterPublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t, 0)

	cases := map[string]int{
		"/":               http.StatusOK,
		"/api/health":     http.StatusOK,
		"/auth/check":     http.StatusOK,
		"/auth/steam":     http.StatusFound,
		"/does-not-exist": http.StatusNotFound,
	}
	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s missing request id header", path)
		}
	}
}

func TestRouterProtectedRoutesRequireSession(t *testing.T) {
	router, sess := newTestRouter(t, 0)

	paths := []string{
		"/api/user/profile",
		"/api/games/owned",
		"/api/games/recent",
		"/api/games/413150/achievements",
		"/api/stats/total-playtime",
		"/api/stats/weekly-playtime",
		"/api/stats/achievements",
		"/api/stats/level",
		"/api/friends/list",
		"/api/friends/76561197960435530/profile",
		"/api/friends/76561197960435530/games",
		"/api/categories",
		"/api/sessions",
		"/api/sessions/game/620",
	}
	for _, path := range paths {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("route %s expected 401 without session, got %d", path, rr.Code)
		}

		req := signedIn(t, sess, httptest.NewRequest(http.MethodGet, path, nil))
		rr = testutil.ServeRequest(router, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("route %s expected 200 with session, got %d: %s", path, rr.Code, rr.Body.String())
		}
	}
}

func TestRouterMethodMismatch(t *testing.T) {
	router, sess := newTestRouter(t, 0)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/sessions/start"},
		{http.MethodGet, "/api/recommendations/suggest"},
		{http.MethodPost, "/api/games/owned"},
		{http.MethodPost, "/"},
	}
	for _, tc := range cases {
		req := signedIn(t, sess, httptest.NewRequest(tc.method, tc.path, nil))
		rr := testutil.ServeRequest(router, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s expected 405, got %d", tc.method, tc.path, rr.Code)
		}
	}
}

func TestRouterUnknownPathUnderRootIsNotFound(t *testing.T) {
	router, sess := newTestRouter(t, 0)
	req := signedIn(t, sess, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	rr := testutil.ServeRequest(router, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestRouterSuggestIsRateLimitedPerUser(t *testing.T) {
	router, sess := newTestRouter(t, 1)

	send := func() int {
		req := signedIn(t, sess, testutil.NewJSONRequest(http.MethodPost, "/api/recommendations/suggest", `{"mood":"chill"}`))
		return testutil.ServeRequest(router, req).Code
	}
	if code := send(); code != http.StatusOK {
		t.Fatalf("expected first suggest to pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected second suggest to be limited, got %d", code)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, 0)
	req := httptest.NewRequest(http.MethodOptions, "/api/categories", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := testutil.ServeRequest(router, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Fatalf("expected allow origin header, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials allowed, got %q", got)
	}
}
