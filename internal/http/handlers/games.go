package handlers

import nethttp "net/http"

func (h *Handler) OwnedGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	owned, err := h.library.OwnedGames(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"gameCount": owned.Count, "games": owned.Games}, h.logger)
}

func (h *Handler) RecentGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	recent, err := h.library.RecentGames(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"totalCount": recent.TotalCount, "games": recent.Games}, h.logger)
}

// GameAchievements returns merged achievements for /api/games/{appId}/achievements.
func (h *Handler) GameAchievements(w nethttp.ResponseWriter, r *nethttp.Request) {
	appID, err := pathInt(r, "appId")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid app id", h.logger)
		return
	}
	list, err := h.library.Achievements(r.Context(), currentUser(r).SteamID, appID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"achievements": list}, h.logger)
}
