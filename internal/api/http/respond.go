package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"camera-rental-backend/internal/logger"
	"camera-rental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service-layer errors onto HTTP statuses. Unknown
// errors are logged and reported as generic 500s so database details never
// leak to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrRentalConflict),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrDuplicateCameraCode),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrCameraHasActiveRentals),
		errors.Is(err, service.ErrCannotDeleteSelf),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
