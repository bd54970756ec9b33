package handlers

import (
	nethttp "net/http"

	"github.com/PEEKING-web/steam-tracker/internal/app/categories"
)

func (h *Handler) ListCategories(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.categories.List(r.Context(), currentUser(r).SteamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"categories": list}, h.logger)
}

func (h *Handler) CreateCategory(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req categories.NameRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.categories.Create(r.Context(), currentUser(r).SteamID, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"category": c}, h.logger)
}

func (h *Handler) AddCategoryGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req categories.GameRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.categories.AddGame(r.Context(), currentUser(r).SteamID, r.PathValue("id"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"category": c}, h.logger)
}

func (h *Handler) RemoveCategoryGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	appID, err := pathInt(r, "appid")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid app id", h.logger)
		return
	}
	c, err := h.categories.RemoveGame(r.Context(), currentUser(r).SteamID, r.PathValue("id"), appID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"category": c}, h.logger)
}

func (h *Handler) RenameCategory(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req categories.NameRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.categories.Rename(r.Context(), currentUser(r).SteamID, r.PathValue("id"), req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, envelope{"category": c}, h.logger)
}

func (h *Handler) DeleteCategory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.categories.Delete(r.Context(), currentUser(r).SteamID, r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeOK(w, nil, h.logger)
}
