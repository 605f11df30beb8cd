package mapper

import (
	"todoai/internal/adapter/http/dto"
	"todoai/internal/core/domain"
)

func ToAnalysisResponse(result domain.AnalysisResult) dto.AnalysisResponse {
	insights := result.Insights
	if insights == nil {
		insights = []string{}
	}
	return dto.AnalysisResponse{
		Summary:             result.Summary,
		Insights:            insights,
		PrioritySuggestions: result.PrioritySuggestions,
	}
}

func ToBreakdownResponse(result domain.BreakdownResult) dto.BreakdownResponse {
	tasks := make([]dto.SuggestedTask, 0, len(result.SuggestedTasks))
	for _, task := range result.SuggestedTasks {
		item := dto.SuggestedTask{
			Title:       task.Title,
			Description: task.Description,
		}
		if task.EstimatedPriority != nil {
			value := string(*task.EstimatedPriority)
			item.EstimatedPriority = &value
		}
		tasks = append(tasks, item)
	}

	return dto.BreakdownResponse{
		Goal:           result.Goal,
		SuggestedTasks: tasks,
		Reasoning:      result.Reasoning,
	}
}
