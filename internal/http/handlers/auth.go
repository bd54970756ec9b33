package handlers

import (
	nethttp "net/http"

	"github.com/PEEKING-web/steam-tracker/internal/auth"
	"github.com/PEEKING-web/steam-tracker/internal/domain/players"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

// SteamLogin redirects to Steam's OpenID login page.
func (h *Handler) SteamLogin(w nethttp.ResponseWriter, r *nethttp.Request) {
	nethttp.Redirect(w, r, h.openID.AuthURL(), nethttp.StatusFound)
}

// SteamReturn verifies the OpenID response, loads the profile and sets the
// session cookie. Failures send the browser back to the frontend root.
func (h *Handler) SteamReturn(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	steamID, err := h.openID.Verify(r.Context(), r.URL.Query())
	if err != nil {
		logging.Warn(logger, "steam login rejected", logging.FieldError, err.Error())
		nethttp.Redirect(w, r, h.frontendURL+"/", nethttp.StatusFound)
		return
	}

	var profile *players.PlayerSummary
	if h.profiles != nil {
		list, err := h.profiles.FetchPlayerSummaries(r.Context(), []string{steamID})
		if err != nil {
			logging.Warn(logger, "profile lookup failed after login",
				logging.FieldError, err.Error(),
				logging.FieldSteamID, steamID,
			)
		} else if len(list) > 0 {
			profile = &list[0]
		}
	}

	if err := h.auth.SetCookie(w, auth.UserFromSummary(steamID, profile)); err != nil {
		h.fail(w, r, err)
		return
	}
	logging.Info(logger, "steam login", logging.FieldSteamID, steamID)
	nethttp.Redirect(w, r, h.frontendURL+"/profile", nethttp.StatusFound)
}

// Logout clears the session cookie.
func (h *Handler) Logout(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.auth.ClearCookie(w)
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": "Logged out successfully"}, h.logger)
}

// AuthCheck reports whether the request carries a valid session.
func (h *Handler) AuthCheck(w nethttp.ResponseWriter, r *nethttp.Request) {
	u, err := h.auth.FromRequest(r)
	if err != nil {
		writeJSON(w, nethttp.StatusOK, map[string]any{"authenticated": false}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"authenticated": true, "user": u}, h.logger)
}

// Profile returns the signed-in user.
func (h *Handler) Profile(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeOK(w, envelope{"user": currentUser(r)}, h.logger)
}
