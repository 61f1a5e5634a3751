// Package response writes JSON bodies and structured API errors.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/felixgeelhaar/shopbazar/internal/api/middleware"
)

// Error codes
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeEmailExists  = "EMAIL_EXISTS"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL_ERROR"
)

// UnauthorizedMessage is the single body returned for every rejected credential
const UnauthorizedMessage = "unauthorized access"

// APIError represents a structured API error
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// NewAPIError creates a new API error
func NewAPIError(code string, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// WithCause wraps an underlying error. The cause is logged, never serialized.
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// ErrorResponse is the JSON structure for error responses
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// WriteError logs the error with request context and writes it as JSON
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, apiErr *APIError) {
	logAttrs := []any{
		"code", apiErr.Code,
		"message", apiErr.Message,
		"status", statusCode,
		"method", r.Method,
		"path", r.URL.Path,
	}
	if apiErr.cause != nil {
		logAttrs = append(logAttrs, "cause", apiErr.cause.Error())
	}
	if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
		logAttrs = append(logAttrs, "request_id", requestID)
	}

	if statusCode >= 500 {
		slog.Error("api error", logAttrs...)
	} else if statusCode >= 400 {
		slog.Warn("api error", logAttrs...)
	}

	WriteJSON(w, statusCode, ErrorResponse{Error: apiErr})
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func BadRequest(w http.ResponseWriter, r *http.Request, message string, cause error) {
	WriteError(w, r, http.StatusBadRequest, NewAPIError(CodeBadRequest, message).WithCause(cause))
}

func EmailExists(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusBadRequest, NewAPIError(CodeEmailExists, "Email already exists"))
}

// Unauthorized writes the fixed 401 body. Callers log the reason themselves.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: NewAPIError(CodeUnauthorized, UnauthorizedMessage)})
}

func Forbidden(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusForbidden, NewAPIError(CodeForbidden, message))
}

func InternalError(w http.ResponseWriter, r *http.Request, message string, cause error) {
	WriteError(w, r, http.StatusInternalServerError, NewAPIError(CodeInternal, message).WithCause(cause))
}
