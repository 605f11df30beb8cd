package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured     = errors.New("API key not configured")
	ErrTimeout           = errors.New("AI request timed out")
	ErrEmptyResponse     = errors.New("AI provider returned an empty response")
	ErrMalformedResponse = errors.New("AI response is not in the expected format")
	ErrEmptyResult       = errors.New("AI response contained no valid tasks")
)

// ValidationError is a caller-fixable input problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	ErrGoalRequired    = &ValidationError{Field: "goal", Message: "goal is required"}
	ErrGoalTooShort    = &ValidationError{Field: "goal", Message: "goal must be at least 5 characters"}
	ErrGoalTooLong     = &ValidationError{Field: "goal", Message: "goal must be at most 500 characters"}
	ErrInvalidMaxTasks = &ValidationError{Field: "maxTasks", Message: "maxTasks must be between 1 and 20"}
)

// ProviderError carries a non-success status returned by the upstream provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("AI provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("AI provider returned status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the upstream failure is worth another attempt.
func (e *ProviderError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
