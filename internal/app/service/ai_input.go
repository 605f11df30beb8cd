package service

import (
	"strings"
	"unicode/utf8"

	"todoai/internal/core/domain"
)

const (
	GoalMinLength    = 5
	GoalMaxLength    = 500
	ContextMaxLength = 500
	MinTasks         = 1
	MaxTasks         = 20
	DefaultMaxTasks  = 8
)

type breakdownInput struct {
	goal     string
	context  string
	maxTasks int
}

// validateBreakdownRequest runs before any network call.
func validateBreakdownRequest(req domain.BreakdownRequest, taskCeiling int) (breakdownInput, error) {
	goal := strings.TrimSpace(req.Goal)
	switch length := utf8.RuneCountInString(goal); {
	case length == 0:
		return breakdownInput{}, domain.ErrGoalRequired
	case length < GoalMinLength:
		return breakdownInput{}, domain.ErrGoalTooShort
	case length > GoalMaxLength:
		return breakdownInput{}, domain.ErrGoalTooLong
	}

	maxTasks := DefaultMaxTasks
	if req.MaxTasks != nil {
		if *req.MaxTasks < MinTasks || *req.MaxTasks > MaxTasks {
			return breakdownInput{}, domain.ErrInvalidMaxTasks
		}
		maxTasks = *req.MaxTasks
	}
	if taskCeiling <= 0 || taskCeiling > MaxTasks {
		taskCeiling = MaxTasks
	}
	maxTasks = min(maxTasks, taskCeiling)

	input := breakdownInput{
		goal:     sanitizeText(goal, GoalMaxLength),
		maxTasks: maxTasks,
	}
	if req.Context != nil {
		input.context = sanitizeText(*req.Context, ContextMaxLength)
	}
	return input, nil
}

// sanitizeText trims and silently truncates to limit characters.
func sanitizeText(value string, limit int) string {
	return truncateRunes(strings.TrimSpace(value), limit)
}

func truncateRunes(value string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit]))
}
