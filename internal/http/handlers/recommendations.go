package handlers

import (
	nethttp "net/http"

	"github.com/PEEKING-web/steam-tracker/internal/app/recommend"
)

type suggestRequest struct {
	DayType       string `json:"dayType" validate:"max=64"`
	Mood          string `json:"mood" validate:"max=64"`
	TimeAvailable string `json:"timeAvailable" validate:"max=64"`
}

// Suggest returns up to three games from the user's library for the
// situation in the body.
func (h *Handler) Suggest(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req suggestRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.recommend.RecommendForUser(r.Context(), currentUser(r).SteamID, recommend.SituationalContext(req))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	body := envelope{
		"recommendations": res.Recommendations,
		"contextMessage":  res.ContextMessage,
	}
	if res.Message != "" {
		body["message"] = res.Message
	}
	if res.Fallback {
		body["fallback"] = true
	}
	if res.Supplemented {
		body["supplemented"] = true
	}
	writeOK(w, body, h.logger)
}
