// Package errors provides comprehensive error handling for Scout.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================
// Error Categories
// ============================================================

// Category defines the type of error for handling decisions.
type Category int

const (
	// CategoryConfig errors are fatal configuration problems (missing credential)
	CategoryConfig Category = iota

	// CategoryHTTP errors are classified non-200 responses from the remote service
	CategoryHTTP

	// CategoryNoResults errors are successful calls that yielded zero results
	CategoryNoResults

	// CategoryTemporary errors are transient (network failures, timeouts)
	CategoryTemporary

	// CategoryUser errors are due to caller input (missing required field)
	CategoryUser
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryConfig:
		return "config"
	case CategoryHTTP:
		return "http"
	case CategoryNoResults:
		return "no_results"
	case CategoryTemporary:
		return "temporary"
	case CategoryUser:
		return "user"
	default:
		return "unknown"
	}
}

// ============================================================
// AppError - Main Error Type
// ============================================================

// AppError is the main error type for all Scout errors.
type AppError struct {
	// Code is a unique error code for programmatic handling
	Code string

	// Message is a user-friendly error message
	Message string

	// Category determines how the error should be handled
	Category Category

	// Inner is the underlying error
	Inner error

	// StatusCode is the HTTP status for classified remote failures, 0 otherwise
	StatusCode int

	// Retryable indicates if the calling agent may usefully retry
	Retryable bool

	// Suggestions are remediation suggestions for the caller
	Suggestions []string

	// Context is additional debugging information
	Context map[string]interface{}
}

// Error returns the error message.
func (e *AppError) Error() string {
	var sb strings.Builder

	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(e.Code)
		sb.WriteString("] ")
	}

	sb.WriteString(e.Message)

	if e.Inner != nil {
		innerMsg := e.Inner.Error()
		if innerMsg != "" && innerMsg != e.Message {
			sb.WriteString(": ")
			sb.WriteString(innerMsg)
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Inner
}

// Is checks if the target error is contained in this error.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Inner, target)
}

// ============================================================
// Error Constructors
// ============================================================

// New creates a new AppError.
func New(code, message string, category Category) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
	}
}

// Wrap wraps an existing error with context.
func Wrap(err error, code, message string, category Category) *AppError {
	if err == nil {
		return nil
	}

	// If it's already an AppError, carry its classification forward
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:        code,
			Message:     message,
			Category:    category,
			Inner:       appErr,
			StatusCode:  appErr.StatusCode,
			Retryable:   appErr.Retryable,
			Suggestions: appErr.Suggestions,
			Context:     appErr.Context,
		}
	}

	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
		Inner:    err,
	}
}

// Config creates a fatal configuration error.
func Config(code, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryConfig,
	}
}

// User creates a caller input error.
func User(code, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryUser,
	}
}

// HTTP creates a classified remote-service error carrying the status code.
// Server-side statuses and rate limits are marked retryable for the caller;
// retrying is always the calling agent's decision, never this layer's.
func HTTP(status int, detail string) *AppError {
	return &AppError{
		Code:       CodeHTTPError,
		Message:    fmt.Sprintf("Error %d: %s", status, detail),
		Category:   CategoryHTTP,
		StatusCode: status,
		Retryable:  status == 429 || status >= 500,
	}
}

// NoResults creates an empty-result diagnostic error. The subject is the
// query or URL that produced no results; suggestions come from the
// per-operation diagnostic policy.
func NoResults(verb, subject string, suggestions []string) *AppError {
	return &AppError{
		Code: CodeNoResults,
		Message: fmt.Sprintf(
			"No %s results found for '%s'. Suggestions: %s. Try modifying your %s parameters with one of these approaches.",
			verb, subject, strings.Join(suggestions, ", "), verb,
		),
		Category:    CategoryNoResults,
		Suggestions: suggestions,
	}
}

// Temporary creates a retryable transient error.
func Temporary(code, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Category:  CategoryTemporary,
		Retryable: true,
	}
}

// ============================================================
// Error Codes
// ============================================================

const (
	// Credential errors
	CodeAPIKeyMissing = "API_KEY_MISSING"

	// Remote service errors
	CodeHTTPError     = "HTTP_ERROR"
	CodeNoResults     = "NO_RESULTS"
	CodeBadResponse   = "BAD_RESPONSE"
	CodeStreamFailed  = "STREAM_FAILED"
	CodeRequestFailed = "REQUEST_FAILED"

	// Tool errors
	CodeToolNotFound      = "TOOL_NOT_FOUND"
	CodeToolInvalidParams = "TOOL_INVALID_PARAMS"

	// History errors
	CodeHistoryUnavailable = "HISTORY_UNAVAILABLE"
)

// ============================================================
// Helpers
// ============================================================

// GetCategory extracts the category from an error.
// Returns CategoryTemporary for non-AppError errors.
func GetCategory(err error) Category {
	if err == nil {
		return CategoryTemporary
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category
	}

	return CategoryTemporary
}

// IsRetryable checks if an error is retryable. Scout itself never retries;
// this surfaces the classification for the calling agent.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}

	// Default to retryable for unknown errors
	return true
}

// IsStructured reports whether the error is one of the structured kinds
// (classified HTTP or empty-result diagnostic) that must surface to the
// caller as a raised error rather than an in-band payload.
func IsStructured(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Category {
	case CategoryHTTP, CategoryNoResults, CategoryUser:
		return true
	}
	return false
}

// GetSuggestions returns remediation suggestions for an error.
func GetSuggestions(err error) []string {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Suggestions
	}

	return nil
}

// GetStatusCode returns the HTTP status for classified remote failures.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

// FormatUserMessage formats a user-friendly error message with suggestions.
func FormatUserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		var sb strings.Builder
		sb.WriteString(appErr.Message)

		if len(appErr.Suggestions) > 0 {
			sb.WriteString("\n\nSuggestions:")
			for _, s := range appErr.Suggestions {
				sb.WriteString("\n  - ")
				sb.WriteString(s)
			}
		}

		return sb.String()
	}

	return err.Error()
}
