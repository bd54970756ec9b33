package handlers

import (
	nethttp "net/http"

	"github.com/PEEKING-web/steam-tracker/internal/app/library"
)

func (h *Handler) TotalPlaytime(w nethttp.ResponseWriter, r *nethttp.Request) {
	total, err := h.library.TotalPlaytime(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, struct {
		Success bool `json:"success"`
		library.TotalPlaytime
	}{true, total}, h.logger)
}

func (h *Handler) WeeklyPlaytime(w nethttp.ResponseWriter, r *nethttp.Request) {
	weekly, err := h.library.WeeklyPlaytime(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, struct {
		Success bool `json:"success"`
		library.WeeklyPlaytime
	}{true, weekly}, h.logger)
}

func (h *Handler) RecentAchievements(w nethttp.ResponseWriter, r *nethttp.Request) {
	recent, err := h.library.RecentAchievements(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, struct {
		Success bool `json:"success"`
		library.RecentAchievements
	}{true, recent}, h.logger)
}

func (h *Handler) Level(w nethttp.ResponseWriter, r *nethttp.Request) {
	level, err := h.library.Level(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"level": level}, h.logger)
}
