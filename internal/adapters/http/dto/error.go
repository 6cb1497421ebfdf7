package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response: a single
// human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteErrorResponse writes the JSON error body for the given domain error,
// with the status code derived from the error's sentinel. Unrecognized errors
// become a 500 with a generic message so internals never leak to clients.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := domainErrorToStatus(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
// Broken references are client mistakes, not missing resources, so they map
// to 400 rather than 404.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
