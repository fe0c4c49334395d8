// Package httpapi has the JSON plumbing shared by the gateway handlers.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/clients"
	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
)

// maxBodyBytes bounds dashboard form payloads.
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed call, shaped like the league API
// errors so the UI can show Detail in a notification.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// WriteError maps err onto a status and writes it as an ErrorResponse.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	detail := err.Error()

	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		detail = apiErr.Detail
	}

	evt := log.Warn()
	if status >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("request failed")

	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// StatusFor picks the HTTP status for err. Upstream 4xx answers are passed
// through; anything else from upstream is a bad gateway.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrRateLimited):
		return http.StatusTooManyRequests
	}
	if code := clients.StatusCode(err); code != 0 {
		if code >= 400 && code < 500 {
			return code
		}
		return http.StatusBadGateway
	}
	return http.StatusBadGateway
}

// DecodeJSON reads a JSON body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return apperr.Invalid("malformed request body: %v", err)
	}
	return nil
}

// ParseID validates an entity ID taken from the URL. The league API issues
// UUIDs for every entity.
func ParseID(name, raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.Invalid("invalid %s %q", name, raw)
	}
	return id.String(), nil
}

// ParseDivision reads a division number, defaulting to the first division.
func ParseDivision(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	d, err := strconv.Atoi(raw)
	if err != nil || (d != 1 && d != 2) {
		return 0, apperr.Invalid("division must be 1 or 2, got %q", raw)
	}
	return d, nil
}

// Message is a small acknowledgement body for mutations without a result.
type Message struct {
	Message string `json:"message"`
}

// Ack writes a Message.
func Ack(w http.ResponseWriter, format string, args ...any) {
	WriteJSON(w, http.StatusOK, Message{Message: fmt.Sprintf(format, args...)})
}
