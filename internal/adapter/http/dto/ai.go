package dto

// AnalyzeTodoItem mirrors a Todo as sent by the frontend; only the fields
// the analysis prompt needs are read.
type AnalyzeTodoItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

type AnalysisResponse struct {
	Summary             string   `json:"summary"`
	Insights            []string `json:"insights"`
	PrioritySuggestions []string `json:"prioritySuggestions,omitempty"`
}

type SuggestedTask struct {
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	EstimatedPriority *string `json:"estimatedPriority,omitempty"`
}

type BreakdownResponse struct {
	Goal           string          `json:"goal"`
	SuggestedTasks []SuggestedTask `json:"suggestedTasks"`
	Reasoning      *string         `json:"reasoning,omitempty"`
}
