package service

import (
	"encoding/json"
	"strings"

	"todoai/internal/core/domain"
)

const (
	maxTitleLength = 200
	maxTextLength  = 1000

	fallbackSummary = "Unable to generate a summary at this time."
)

// extractJSONObject finds the first complete JSON object embedded in a
// completion. Prose, code fences and stray braces around it are ignored.
// Every span a first-to-last brace scan would accept is also found here,
// since decoding from the first brace stops at the end of that object.
func extractJSONObject(text string) (map[string]any, error) {
	for offset := 0; offset < len(text); {
		idx := strings.IndexByte(text[offset:], '{')
		if idx < 0 {
			break
		}
		start := offset + idx

		var payload map[string]any
		if err := json.NewDecoder(strings.NewReader(text[start:])).Decode(&payload); err == nil {
			return payload, nil
		}
		offset = start + 1
	}

	return nil, domain.ErrMalformedResponse
}

// validateAnalysisPayload never fails: missing fields degrade to defaults.
func validateAnalysisPayload(payload map[string]any) domain.AnalysisResult {
	result := domain.AnalysisResult{
		Summary:  fallbackSummary,
		Insights: []string{},
	}

	if summary, ok := payload["summary"].(string); ok {
		if summary = truncateRunes(strings.TrimSpace(summary), maxTextLength); summary != "" {
			result.Summary = summary
		}
	}

	if insights, ok := payload["insights"].([]any); ok {
		result.Insights = filterStrings(insights)
	}

	if suggestions, ok := payload["prioritySuggestions"].([]any); ok {
		result.PrioritySuggestions = filterStrings(suggestions)
	}

	return result
}

func filterStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if s = truncateRunes(strings.TrimSpace(s), maxTextLength); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// filterSuggestedTasks keeps well-formed tasks in their original order and
// reports how many entries were dropped.
func filterSuggestedTasks(values []any) ([]domain.SuggestedTask, int) {
	kept := make([]domain.SuggestedTask, 0, len(values))
	dropped := 0

	for _, value := range values {
		task, ok := toSuggestedTask(value)
		if !ok {
			dropped++
			continue
		}
		kept = append(kept, task)
	}

	return kept, dropped
}

func toSuggestedTask(value any) (domain.SuggestedTask, bool) {
	object, ok := value.(map[string]any)
	if !ok {
		return domain.SuggestedTask{}, false
	}

	title, ok := object["title"].(string)
	if !ok {
		return domain.SuggestedTask{}, false
	}
	title = truncateRunes(strings.TrimSpace(title), maxTitleLength)
	if title == "" {
		return domain.SuggestedTask{}, false
	}

	task := domain.SuggestedTask{Title: title}

	if description, ok := object["description"].(string); ok {
		description = truncateRunes(strings.TrimSpace(description), maxTextLength)
		task.Description = &description
	}

	if raw, ok := object["estimatedPriority"].(string); ok {
		if priority, valid := domain.ParsePriority(raw); valid {
			task.EstimatedPriority = &priority
		}
	}

	return task, true
}

type breakdownValidation struct {
	result  domain.BreakdownResult
	dropped int
	trimmed int
}

func validateBreakdownPayload(payload map[string]any, goal string, maxTasks int) (breakdownValidation, error) {
	rawTasks, ok := payload["suggestedTasks"].([]any)
	if !ok {
		return breakdownValidation{}, domain.ErrMalformedResponse
	}

	tasks, dropped := filterSuggestedTasks(rawTasks)
	if len(tasks) == 0 {
		return breakdownValidation{dropped: dropped}, domain.ErrEmptyResult
	}

	trimmed := 0
	if maxTasks > 0 && len(tasks) > maxTasks {
		trimmed = len(tasks) - maxTasks
		tasks = tasks[:maxTasks]
	}

	result := domain.BreakdownResult{
		Goal:           goal,
		SuggestedTasks: tasks,
	}
	if reasoning, ok := payload["reasoning"].(string); ok {
		reasoning = truncateRunes(strings.TrimSpace(reasoning), maxTextLength)
		result.Reasoning = &reasoning
	}

	return breakdownValidation{result: result, dropped: dropped, trimmed: trimmed}, nil
}
