package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"biz-awards/internal/core/port"
)

// envelope is the uniform response shape consumed by the frontend.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeData(w http.ResponseWriter, status int, data any) {
	h.writeJSON(w, status, envelope{Success: true, Data: data})
}

func (h *Handler) writeFailure(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, envelope{Success: false, Error: message})
}

// writeError maps domain sentinels to status codes. Anything unmapped is
// a storage or programming failure: it is logged with detail and the
// client sees only a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrValidation), errors.Is(err, port.ErrInvalidTransition):
		h.writeFailure(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrPermissionDenied):
		h.writeFailure(w, http.StatusForbidden, err.Error())
	case errors.Is(err, port.ErrNotFound):
		h.writeFailure(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrConflict):
		h.writeFailure(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeFailure(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON parses a request body, rejecting unknown fields so
// malformed payloads fail at the boundary instead of reaching storage.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
