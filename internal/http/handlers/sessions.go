package handlers

import (
	nethttp "net/http"

	"github.com/PEEKING-web/steam-tracker/internal/app/sessions"
)

func (h *Handler) StartSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req sessions.StartRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	ps, err := h.sessions.Start(r.Context(), currentUser(r).SteamID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"session": ps}, h.logger)
}

func (h *Handler) EndSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	ps, err := h.sessions.End(r.Context(), currentUser(r).SteamID, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"session": ps}, h.logger)
}

func (h *Handler) ListSessions(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.sessions.List(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"sessions": list}, h.logger)
}

func (h *Handler) ListGameSessions(w nethttp.ResponseWriter, r *nethttp.Request) {
	appID, err := pathInt(r, "appid")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid app id", h.logger)
		return
	}
	list, err := h.sessions.ListByGame(r.Context(), currentUser(r).SteamID, appID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"sessions": list}, h.logger)
}
