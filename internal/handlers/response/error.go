package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/snapscape.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// FromError maps a service error onto the HTTP status it should produce
func FromError(err error) ErrorMessage {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.ErrInvalidInput):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.ErrUnauthorized):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnauthorized}
	case errors.Is(err, errs.ErrForbidden):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusForbidden}
	default:
		// Store failures are not leaked to clients
		return ErrorMessage{Message: "internal server error", StatusCode: http.StatusInternalServerError}
	}
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
