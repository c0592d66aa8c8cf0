package apierror

import (
	"fmt"
	"net/http"
	"strings"
)

const CodeValidationFailed = "VALIDATION_FAILED"

type APIError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Details    string   `json:"details,omitempty"`
	Messages   []string `json:"messages,omitempty"`
	HTTPStatus int      `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: %s [%s]", e.Code, e.Message, strings.Join(e.Messages, "; "))
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// Validation reports every broken rule of a request payload at once.
func Validation(messages []string) *APIError {
	return &APIError{
		Code:       CodeValidationFailed,
		Message:    "request validation failed",
		Messages:   messages,
		HTTPStatus: http.StatusBadRequest,
	}
}
