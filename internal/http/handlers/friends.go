package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/PEEKING-web/steam-tracker/internal/app/friends"
	"github.com/PEEKING-web/steam-tracker/internal/auth"
)

func (h *Handler) FriendsList(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.friends.List(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"friendCount": len(list), "friends": list}, h.logger)
}

func (h *Handler) FriendProfile(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.friendID(w, r)
	if !ok {
		return
	}
	profile, err := h.friends.Profile(r.Context(), id)
	if errors.Is(err, friends.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "Friend not found", h.logger)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"profile": profile}, h.logger)
}

// FriendGames shows a friend's library. Private profiles answer 200 with
// success false and isPrivate true so the page can explain why.
func (h *Handler) FriendGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.friendID(w, r)
	if !ok {
		return
	}
	games, err := h.friends.Games(r.Context(), id)
	if errors.Is(err, friends.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "Friend not found", h.logger)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if games.IsPrivate {
		writeErrorBody(w, r, nethttp.StatusOK, envelope{"error": "This profile is private", "isPrivate": true}, h.logger)
		return
	}
	writeOK(w, envelope{"isPrivate": false, "gameCount": games.GameCount, "games": games.Games}, h.logger)
}

func (h *Handler) friendID(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	id := r.PathValue("steamId")
	if _, ok := auth.SteamIDFromClaimedID("https://steamcommunity.com/openid/id/" + id); !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid steam id", h.logger)
		return "", false
	}
	return id, true
}
