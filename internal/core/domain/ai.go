package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts only the exact lowercase values.
func ParsePriority(value string) (Priority, bool) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), true
	default:
		return "", false
	}
}

type AnalysisResult struct {
	Summary             string
	Insights            []string
	PrioritySuggestions []string
}

type BreakdownRequest struct {
	Goal     string
	Context  *string
	MaxTasks *int
}

type SuggestedTask struct {
	Title             string
	Description       *string
	EstimatedPriority *Priority
}

type BreakdownResult struct {
	Goal           string
	SuggestedTasks []SuggestedTask
	Reasoning      *string
}

// CompletionRequest is one system+user exchange with the provider.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	MaxTokens    int
	Temperature  float64
	Timeout      time.Duration
}
