package validation

import (
	"bytes"
	"encoding/json"
	"todoai/internal/adapter/http/dto"
	"todoai/internal/core/domain"
)

var (
	ErrInvalidAnalyzePayload   = &domain.ValidationError{Field: "todos", Message: "todos must be an array"}
	ErrInvalidBreakdownPayload = &domain.ValidationError{Field: "body", Message: "request body must be a JSON object"}
	ErrGoalNotString           = &domain.ValidationError{Field: "goal", Message: "goal must be a string"}
	ErrContextNotString        = &domain.ValidationError{Field: "context", Message: "context must be a string"}
)

// ParseAnalyzeTodos rejects a missing or non-array todos field before the
// analysis pipeline runs. An empty array is valid.
func ParseAnalyzeTodos(raw map[string]json.RawMessage) ([]dto.AnalyzeTodoItem, error) {
	value, ok := raw["todos"]
	if !ok || !isJSONArray(value) {
		return nil, ErrInvalidAnalyzePayload
	}

	var items []dto.AnalyzeTodoItem
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, ErrInvalidAnalyzePayload
	}
	return items, nil
}

// BuildBreakdownRequest checks field types only; length and range rules
// belong to the breakdown service.
func BuildBreakdownRequest(raw map[string]json.RawMessage) (domain.BreakdownRequest, error) {
	goalRaw, ok := raw["goal"]
	if !ok || isJSONNull(goalRaw) {
		return domain.BreakdownRequest{}, domain.ErrGoalRequired
	}

	var req domain.BreakdownRequest
	if err := json.Unmarshal(goalRaw, &req.Goal); err != nil {
		return domain.BreakdownRequest{}, ErrGoalNotString
	}

	if value, ok := raw["context"]; ok && !isJSONNull(value) {
		var context string
		if err := json.Unmarshal(value, &context); err != nil {
			return domain.BreakdownRequest{}, ErrContextNotString
		}
		req.Context = &context
	}

	if value, ok := raw["maxTasks"]; ok && !isJSONNull(value) {
		var maxTasks int
		if err := json.Unmarshal(value, &maxTasks); err != nil {
			return domain.BreakdownRequest{}, domain.ErrInvalidMaxTasks
		}
		req.MaxTasks = &maxTasks
	}

	return req, nil
}

func isJSONArray(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '['
}
