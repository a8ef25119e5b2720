package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tagtemanin/internal/contextutil"
	"tagtemanin/internal/service"
)

// maxBodyBytes bounds inbound request bodies.
const maxBodyBytes = 64 << 10

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// decodeBody decodes a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation error", "field", validationErr.Field, "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing fields: %s", validationErr.Field))
		return
	}

	if errors.Is(err, context.Canceled) {
		logger.WarnContext(ctx, "request canceled", "error", err)
	} else {
		logger.ErrorContext(ctx, "service error", "error", err)
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrConfiguration):
		writeError(w, http.StatusInternalServerError, "Server configuration error")
	case errors.Is(err, service.ErrExternalService):
		writeError(w, http.StatusBadGateway, "All models are busy, please try again later")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "Request canceled")
	default:
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
