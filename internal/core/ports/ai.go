package ports

import (
	"context"

	"todoai/internal/core/domain"
)

// CompletionGateway returns the raw completion text for one prompt exchange.
type CompletionGateway interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// SecretProvider resolves the provider API key, or fails with domain.ErrNotConfigured.
type SecretProvider interface {
	APIKey(ctx context.Context) (string, error)
}

type AIService interface {
	AnalyzeTodos(ctx context.Context, todos []domain.Todo) (domain.AnalysisResult, error)
	BreakdownGoal(ctx context.Context, req domain.BreakdownRequest) (domain.BreakdownResult, error)
}
