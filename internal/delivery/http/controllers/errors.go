package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// writeServiceError maps a service error to its HTTP status. what names the resource in a
// bare not-found message. Unexpected errors are logged and answered with a generic message.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, what string) {
	var eventConflict *domain.EventConflictError
	var timeConflict *domain.TimeConflictError
	switch {
	case errors.As(err, &timeConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict,
			timeConflict.Error()+". Please choose a different time slot")
	case errors.As(err, &eventConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, eventConflict.Error())
	case errors.Is(err, domain.ErrNameConflict), errors.Is(err, domain.ErrDateConflict), errors.Is(err, domain.ErrTimeConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidFormat), errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		msg := err.Error()
		if err == domain.ErrNotFound && what != "" {
			msg = what + " not found"
		}
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msg)
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "you do not have permission to perform this action")
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid email or password")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}

// requireQuery returns the query parameter key or writes a 400 when it is empty.
func requireQuery(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+key)
		return "", false
	}
	return v, true
}

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}
