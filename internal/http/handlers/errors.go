package handlers

import (
	"errors"
	"net/http"

	"github.com/PEEKING-web/steam-tracker/internal/app/friends"
	"github.com/PEEKING-web/steam-tracker/internal/app/recommend"
	"github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/providers"
	"github.com/PEEKING-web/steam-tracker/internal/store"
	"github.com/PEEKING-web/steam-tracker/internal/validation"
)

// statusFor maps service errors onto HTTP statuses and client messages.
func statusFor(err error) (int, string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, errBadBody):
		return http.StatusBadRequest, errBadBody.Error()
	case errors.Is(err, sessions.ErrGameRequired),
		errors.Is(err, sessions.ErrInvalidMood),
		errors.Is(err, sessions.ErrNotesTooLong),
		errors.Is(err, categories.ErrNameRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, sessions.ErrAlreadyEnded):
		return http.StatusConflict, err.Error()
	case errors.Is(err, store.ErrNotFound), errors.Is(err, friends.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, recommend.ErrUpstreamDataUnavailable):
		return http.StatusBadGateway, "could not load your steam library"
	case errors.Is(err, providers.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, "steam unavailable"
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return http.StatusServiceUnavailable, "steam rate limited, try again shortly"
	}
	if _, ok := providers.AsStatusError(err); ok {
		return http.StatusBadGateway, "steam request failed"
	}
	return http.StatusInternalServerError, "internal error"
}

// fail logs err and writes the mapped status.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	logger := loggerFromContext(r, h.logger)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, logging.FieldStatusCode, status)
	} else {
		logging.Info(logger, "request rejected", logging.FieldError, err.Error(), logging.FieldStatusCode, status)
	}
	writeError(w, r, status, msg, h.logger)
}
