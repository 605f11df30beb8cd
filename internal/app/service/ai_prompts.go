package service

import (
	"fmt"
	"strings"

	"todoai/internal/core/domain"
)

const analysisSystemPrompt = `You are a productivity assistant that reviews a user's todo list.

Respond with ONLY a JSON object, no text before or after it:
{
  "summary": "1-2 sentence overview of the current workload",
  "insights": ["2-3 short, actionable insights"],
  "prioritySuggestions": ["which tasks to tackle first and why"]
}

Rules:
- Base every statement on the todos provided; do not invent tasks.
- Keep each insight under 200 characters.
- Use plain text inside the JSON strings, no markdown.`

const breakdownSystemPromptTemplate = `You are a planning assistant that breaks a goal down into concrete tasks.

Rules:
- Produce between %d and %d tasks.
- Order the tasks so that each one only depends on tasks listed before it.
- Each title is a concise action (under 80 characters) starting with a verb.
- A description is optional and adds one sentence of detail.
- estimatedPriority is optional and must be one of "low", "medium" or "high".
- Respond with ONLY a JSON object, no text before or after it.`

type prompt struct {
	system string
	user   string
}

func buildAnalysisPrompt(todos []domain.Todo) prompt {
	var b strings.Builder
	completed := 0

	b.WriteString("Here is my todo list:\n")
	for _, todo := range todos {
		mark := " "
		if todo.Completed {
			mark = "x"
			completed++
		}
		b.WriteString("- [")
		b.WriteString(mark)
		b.WriteString("] ")
		b.WriteString(todo.Title)
		if todo.Description != nil && strings.TrimSpace(*todo.Description) != "" {
			b.WriteString(": ")
			b.WriteString(strings.TrimSpace(*todo.Description))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTotal: %d\nPending: %d\nCompleted: %d\n", len(todos), len(todos)-completed, completed)
	b.WriteString("\nAnalyze my workload and respond with the JSON object described.")

	return prompt{system: analysisSystemPrompt, user: b.String()}
}

func buildBreakdownPrompt(input breakdownInput) prompt {
	minTasks := min(4, input.maxTasks)

	var b strings.Builder
	b.WriteString("Goal: ")
	b.WriteString(input.goal)
	b.WriteString("\n")
	if input.context != "" {
		b.WriteString("Context: ")
		b.WriteString(input.context)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nBreak this goal into at most %d tasks. Reply with exactly this JSON shape:\n", input.maxTasks)
	b.WriteString(`{
  "suggestedTasks": [
    {"title": "string", "description": "string (optional)", "estimatedPriority": "low|medium|high (optional)"}
  ],
  "reasoning": "one or two sentences on how the tasks were ordered (optional)"
}`)

	return prompt{
		system: fmt.Sprintf(breakdownSystemPromptTemplate, minTasks, input.maxTasks),
		user:   b.String(),
	}
}
