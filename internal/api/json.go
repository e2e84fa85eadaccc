package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/fehu/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error string `json:"error" validate:"required"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// writeError maps domain sentinels to HTTP statuses. Anything unmapped
// is an internal error and gets logged.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrNoSnapshot):
		writeJSON(w, http.StatusServiceUnavailable, errorBody("no item snapshot loaded"))
	case errors.Is(err, apperr.ErrReadOnly):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("field is read-only"))
	case errors.Is(err, apperr.ErrMissingIdentifier):
		writeJSON(w, http.StatusBadRequest, errorBody("missing item or board identifier"))
	case errors.Is(err, apperr.ErrFetch), errors.Is(err, apperr.ErrUpdate):
		writeJSON(w, http.StatusBadGateway, errorBody("host request failed"))
	default:
		slog.Error("request failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
