package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/internal/service"
)

func mapErr(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, errdefs.ErrValidation),
		errors.Is(err, service.ErrUserDeactivated),
		errors.Is(err, service.ErrCodeNotRequested),
		errors.Is(err, service.ErrCodeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorMessage hides internal failures behind the status text.
func errorMessage(err error, statusCode int) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fe.Field() + " failed on " + fe.Tag()
	}
	if statusCode >= http.StatusInternalServerError {
		return http.StatusText(statusCode)
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	_, _ = w.Write(resp)
}

func writeErr(w http.ResponseWriter, err error) {
	code := mapErr(err)
	writeErrorJSON(w, code, errorMessage(err, code))
}
