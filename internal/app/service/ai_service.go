package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"todoai/internal/config"
	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

const (
	EmptyTodosSummary = "You have no todos yet. Start by adding your first task!"

	analysisTemperature  = 0.7
	breakdownTemperature = 0.7
)

type AIService struct {
	gateway ports.CompletionGateway
	cfg     config.AIConfig
}

func NewAIService(gateway ports.CompletionGateway, cfg config.AIConfig) *AIService {
	return &AIService{gateway: gateway, cfg: cfg}
}

func (s *AIService) AnalyzeTodos(ctx context.Context, todos []domain.Todo) (domain.AnalysisResult, error) {
	if len(todos) == 0 {
		return domain.AnalysisResult{
			Summary:  EmptyTodosSummary,
			Insights: []string{"Add a few tasks to start receiving personalized insights."},
		}, nil
	}

	p := buildAnalysisPrompt(todos)
	completion, err := s.complete(ctx, "analysis", p, s.cfg.AnalysisMaxTokens, analysisTemperature, s.cfg.AnalysisTimeout)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("analyze todos: %w", err)
	}

	payload, err := extractJSONObject(completion)
	if err != nil {
		zap.L().Warn("analysis completion has no JSON object", zap.Int("completion_len", len(completion)))
		return domain.AnalysisResult{}, fmt.Errorf("analyze todos: %w", err)
	}

	return validateAnalysisPayload(payload), nil
}

func (s *AIService) BreakdownGoal(ctx context.Context, req domain.BreakdownRequest) (domain.BreakdownResult, error) {
	input, err := validateBreakdownRequest(req, s.cfg.BreakdownMaxTasks)
	if err != nil {
		return domain.BreakdownResult{}, err
	}

	p := buildBreakdownPrompt(input)
	completion, err := s.complete(ctx, "breakdown", p, s.cfg.BreakdownMaxTokens, breakdownTemperature, s.cfg.BreakdownTimeout)
	if err != nil {
		return domain.BreakdownResult{}, fmt.Errorf("break down goal: %w", err)
	}

	payload, err := extractJSONObject(completion)
	if err != nil {
		zap.L().Warn("breakdown completion has no JSON object", zap.Int("completion_len", len(completion)))
		return domain.BreakdownResult{}, fmt.Errorf("break down goal: %w", err)
	}

	validated, err := validateBreakdownPayload(payload, input.goal, input.maxTasks)
	if validated.dropped > 0 || validated.trimmed > 0 {
		zap.L().Info("filtered suggested tasks",
			zap.Int("dropped", validated.dropped),
			zap.Int("trimmed", validated.trimmed),
			zap.Int("kept", len(validated.result.SuggestedTasks)),
		)
	}
	if err != nil {
		return domain.BreakdownResult{}, fmt.Errorf("break down goal: %w", err)
	}

	return validated.result, nil
}

func (s *AIService) complete(ctx context.Context, feature string, p prompt, maxTokens int, temperature float64, timeout time.Duration) (string, error) {
	start := time.Now()
	completion, err := s.gateway.Complete(ctx, domain.CompletionRequest{
		SystemPrompt: p.system,
		UserPrompt:   p.user,
		Model:        s.cfg.Model,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
		Timeout:      timeout,
	})
	if err != nil {
		zap.L().Warn("ai completion failed",
			zap.String("feature", feature),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	zap.L().Debug("ai completion received",
		zap.String("feature", feature),
		zap.Duration("latency", time.Since(start)),
		zap.Int("completion_len", len(completion)),
	)
	return completion, nil
}

var _ ports.AIService = (*AIService)(nil)
