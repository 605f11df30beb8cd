package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todoai/internal/core/domain"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	description := "  milk and eggs "
	todos := []domain.Todo{
		{ID: "1", Title: "Buy groceries", Description: &description},
		{ID: "2", Title: "File taxes", Completed: true},
		{ID: "3", Title: "Call mom"},
	}

	p := buildAnalysisPrompt(todos)

	require.Equal(t, analysisSystemPrompt, p.system)
	require.Contains(t, p.user, "- [ ] Buy groceries: milk and eggs\n")
	require.Contains(t, p.user, "- [x] File taxes\n")
	require.Contains(t, p.user, "- [ ] Call mom\n")
	require.Contains(t, p.user, "Total: 3\nPending: 2\nCompleted: 1\n")
}

func TestBuildAnalysisPrompt_Deterministic(t *testing.T) {
	todos := []domain.Todo{{ID: "1", Title: "Write report"}}
	require.Equal(t, buildAnalysisPrompt(todos), buildAnalysisPrompt(todos))
}

func TestBuildBreakdownPrompt(t *testing.T) {
	p := buildBreakdownPrompt(breakdownInput{goal: "Plan a weekend camping trip", context: "Two adults, one dog", maxTasks: 6})

	require.Contains(t, p.system, "between 4 and 6 tasks")
	require.Contains(t, p.user, "Goal: Plan a weekend camping trip\n")
	require.Contains(t, p.user, "Context: Two adults, one dog\n")
	require.Contains(t, p.user, "at most 6 tasks")
	require.Contains(t, p.user, `"suggestedTasks"`)
}

func TestBuildBreakdownPrompt_SmallTaskCount(t *testing.T) {
	p := buildBreakdownPrompt(breakdownInput{goal: "Clean the garage", maxTasks: 2})

	require.Contains(t, p.system, "between 2 and 2 tasks")
	require.NotContains(t, p.user, "Context:")
}
