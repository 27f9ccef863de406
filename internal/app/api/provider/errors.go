package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes shared by all transcription providers
const (
	CodeInvalidInput     = "invalid_input"
	CodeFileNotFound     = "file_not_found"
	CodeAuthentication   = "authentication_failed"
	CodeRateLimited      = "rate_limit_exceeded"
	CodeFileTooLarge     = "file_too_large"
	CodeInvalidRequest   = "invalid_request"
	CodeServerError      = "server_error"
	CodeNetworkError     = "network_error"
	CodeResponseParse    = "response_parse_error"
	CodeUnknown          = "unknown_error"
	CodeRequestCancelled = "request_cancelled"
)

// TranscriptionError represents provider-specific errors.
// Retryable is informational; callers decide whether to try again.
type TranscriptionError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Provider    string   `json:"provider"`
	StatusCode  int      `json:"status_code,omitempty"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`

	Err error `json:"-"`
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// ErrorCode extracts the provider error code, or CodeUnknown
func ErrorCode(err error) string {
	var te *TranscriptionError
	if errors.As(err, &te) {
		return te.Code
	}
	return CodeUnknown
}

// ErrorFromStatus maps an unsuccessful HTTP response from a provider to a TranscriptionError
func ErrorFromStatus(providerName string, status int, body []byte) *TranscriptionError {
	detail := strings.TrimSpace(string(body))
	if len(detail) > 512 {
		detail = detail[:512]
	}

	e := &TranscriptionError{
		Provider:   providerName,
		StatusCode: status,
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Code = CodeAuthentication
		e.Message = "API key is invalid or missing"
		e.Suggestions = []string{"Check the API key configured for " + providerName}
	case status == http.StatusTooManyRequests:
		e.Code = CodeRateLimited
		e.Message = "API rate limit exceeded"
		e.Retryable = true
		e.Suggestions = []string{"Wait a moment and try again"}
	case status == http.StatusRequestEntityTooLarge:
		e.Code = CodeFileTooLarge
		e.Message = "audio file is too large"
		e.Suggestions = []string{"Reduce file size", "Split into smaller chunks"}
	case status == http.StatusBadRequest || status == http.StatusUnsupportedMediaType:
		e.Code = CodeInvalidRequest
		e.Message = fmt.Sprintf("invalid request: %s", detail)
	case status >= 500:
		e.Code = CodeServerError
		e.Message = fmt.Sprintf("server error (HTTP %d)", status)
		e.Retryable = true
	default:
		e.Code = CodeUnknown
		e.Message = fmt.Sprintf("unexpected HTTP status %d: %s", status, detail)
	}
	return e
}
