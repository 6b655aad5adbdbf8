package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/calculator"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/service"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorBody{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// respondError translates service and storage errors into status codes.
// Validation failures map to 400, missing records to 404. Integrity
// failures are internal errors and never reported as the caller's fault.
func respondError(w http.ResponseWriter, err error) {
	var splitErr *calculator.InvalidSplitError
	var integrityErr *calculator.DataIntegrityError

	switch {
	case errors.As(err, &splitErr):
		writeError(w, http.StatusBadRequest, splitErr.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrDuplicate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &integrityErr):
		slog.Error("Balance data failed integrity check", "error", err)
		writeError(w, http.StatusInternalServerError, "balance data failed integrity check")
	default:
		slog.Error("Unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses the request body into the given struct.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
