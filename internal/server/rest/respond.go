package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/orgchart/internal/common"
)

const internalErrorMessage = "internal error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// errorResponse maps a service error to a status and a client-safe message.
// Anything not recognised is a 500 with a generic message.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrMissingFields):
		return http.StatusBadRequest, detail(err, common.ErrMissingFields)
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, detail(err, common.ErrorValidation)
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, detail(err, common.ErrorAlreadyExists)
	case errors.Is(err, common.ErrorReferenced):
		return http.StatusBadRequest, detail(err, common.ErrorReferenced)
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusBadRequest, "invalid token"
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, detail(err, common.ErrorUnauthorized)
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, detail(err, common.ErrorNotFound)
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// detail drops the "<sentinel>: " prefix so the client sees only the
// specific reason, e.g. "username is taken".
func detail(err, sentinel error) string {
	msg := err.Error()
	if trimmed, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return trimmed
	}
	return msg
}

func (s *RESTServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorResponse(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, msg)
}
