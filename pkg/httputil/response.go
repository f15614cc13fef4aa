package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
	"github.com/utafrali/storefront/pkg/validator"
)

// ErrorResponse is the flat JSON error body returned by every endpoint.
// Message is always present; the other fields are advisory.
type ErrorResponse struct {
	Message   string            `json:"message"`
	Code      string            `json:"code,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardized error response based on the error type.
// NotFound maps to 404, invalid input to 400, everything else to a generic
// 500 with no internal detail leaked. Internal errors are logged via the
// request-scoped logger when one is present, else the fallback.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	requestID := logger.CorrelationIDFromContext(r.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{Message: appErr.Message, Code: appErr.Code, RequestID: requestID}
		if appErr.Status == http.StatusInternalServerError {
			logInternal(r, l, err)
			resp.Message = "an internal error occurred"
		}
		WriteJSON(w, appErr.Status, resp)
		return
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code = "NOT_FOUND"
		message = "resource not found"
	case errors.Is(err, apperrors.ErrAlreadyExists):
		code = "ALREADY_EXISTS"
		message = "resource already exists"
	case errors.Is(err, apperrors.ErrInvalidInput):
		code = "INVALID_INPUT"
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		logInternal(r, l, err)
	}

	WriteJSON(w, status, ErrorResponse{Message: message, Code: code, RequestID: requestID})
}

func logInternal(r *http.Request, l *slog.Logger, err error) {
	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

// WriteValidationError writes a 400 response with field-level validation
// messages when the error comes from the validator package.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "request validation failed",
			Code:    "VALIDATION_ERROR",
			Fields:  valErr.Fields(),
		})
		return
	}

	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Error(), Code: "INVALID_INPUT"})
}

// ParseID validates that the given path parameter is a positive integer
// identifier. On failure it writes a 400 response and returns false,
// signaling the caller to return early.
func ParseID(w http.ResponseWriter, param string) (int64, bool) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id < 1 {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "invalid identifier: " + param,
			Code:    "INVALID_PARAMETER",
		})
		return 0, false
	}
	return id, true
}
