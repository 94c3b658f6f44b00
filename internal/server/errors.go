package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// apiError is a structured, per-request error. Every failure in this server
// is recoverable by the caller; nothing here is fatal to the process.
type apiError struct {
	HTTP    int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func validationError(format string, args ...any) *apiError {
	return &apiError{
		HTTP:    http.StatusBadRequest,
		Code:    "ValidationError",
		Message: fmt.Sprintf(format, args...),
	}
}

func notFoundError(format string, args ...any) *apiError {
	return &apiError{
		HTTP:    http.StatusNotFound,
		Code:    "NotFoundError",
		Message: fmt.Sprintf(format, args...),
	}
}

func conflictError(format string, args ...any) *apiError {
	return &apiError{
		HTTP:    http.StatusConflict,
		Code:    "ConflictError",
		Message: fmt.Sprintf(format, args...),
	}
}

func unauthorizedError(message string) *apiError {
	return &apiError{
		HTTP:    http.StatusUnauthorized,
		Code:    "Unauthorized",
		Message: message,
	}
}

// writeError renders an error as the JSON envelope the client expects.
// Persistence failures propagate unmodified as 500s; record lookups that
// come back empty read as not-found.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.HTTP, apiErr)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, notFoundError("not found"))
		return
	}
	log.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, &apiError{
		Code:    "InternalError",
		Message: err.Error(),
	})
}
