package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ats/internal/api"
	"ats/internal/domain"
)

var errMissingActor = errors.New(ActorHeader + " header is required")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Error{Error: msg})
}

// writeDomainError maps service errors onto status codes. Anything it does
// not recognise is logged and reported as a 500 without detail.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unknown    *domain.UnknownStageError
		validation *domain.ValidationError
		invalid    *domain.InvalidTransitionError
		conflict   *domain.ConcurrentModificationError
	)
	switch {
	case errors.Is(err, errMissingActor):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &unknown), errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &invalid):
		allowed := toAPIStages(invalid.Allowed)
		writeJSON(w, http.StatusUnprocessableEntity, api.Error{Error: err.Error(), AllowedStages: &allowed})
	default:
		s.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeRequestError reports a body the strict handler could not decode.
func (s *Server) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeParamError reports path, query and header binding failures. A missing
// or blank actor is an authentication failure, not a malformed request.
func (s *Server) writeParamError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		missing *api.RequiredHeaderError
		invalid *api.InvalidParamFormatError
	)
	if (errors.As(err, &missing) && missing.ParamName == ActorHeader) ||
		(errors.As(err, &invalid) && invalid.ParamName == ActorHeader) {
		writeError(w, http.StatusUnauthorized, errMissingActor.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
