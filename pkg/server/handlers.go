package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/vango-dev/elattr/internal/descriptor"
	"github.com/vango-dev/elattr/internal/errors"
)

// DiffRequest is the body of POST /v1/diff.
type DiffRequest struct {
	Prev json.RawMessage `json:"prev"`
	Next json.RawMessage `json:"next"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req DiffRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, errors.New("E213").WithDetail(err.Error()).Wrap(err))
		return
	}
	if len(req.Prev) == 0 || len(req.Next) == 0 {
		s.writeError(w, r, errors.New("E213").WithDetail(`both "prev" and "next" are required`))
		return
	}

	prev, err := descriptor.Parse("prev", req.Prev)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	next, err := descriptor.Parse("next", req.Next)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	changes, err := descriptor.Diff(r.Context(), s.config.Recorder, prev, next)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, descriptor.NewResult(prev.Kind(), changes))
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := descriptor.Parse("body", body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, descriptor.Inspect(e))
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.New("E213").WithDetailf("request body exceeds %d bytes", tooLarge.Limit).Wrap(err)
		}
		return nil, errors.New("E213").Wrap(err)
	}
	return body, nil
}

// errorBody wraps the structured error JSON.
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

func errorJSON(err error) json.RawMessage {
	return json.RawMessage(errors.FromError(err, "E213").FormatJSON())
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	s.logger.Debug("request failed", "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, errorBody{Error: errorJSON(err)})
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	var ee *errors.ElattrError
	if !stderrors.As(err, &ee) {
		return http.StatusInternalServerError
	}
	switch {
	case ee.Code == "E212":
		return http.StatusUnprocessableEntity
	case ee.Category == errors.CategoryDescriptor:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusLabel(status int) string {
	return strconv.Itoa(status)
}
