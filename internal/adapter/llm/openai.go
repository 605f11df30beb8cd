package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

const errorBodySnippetSize = 512

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIGateway calls an OpenAI-compatible chat completions endpoint.
type OpenAIGateway struct {
	baseURL    string
	secrets    ports.SecretProvider
	httpClient *http.Client
}

func NewOpenAIGateway(baseURL string, secrets ports.SecretProvider, httpClient *http.Client) *OpenAIGateway {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OpenAIGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secrets:    secrets,
		httpClient: httpClient,
	}
}

func (g *OpenAIGateway) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	apiKey, err := g.secrets.APIKey(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	ctx, cancel := withTimeout(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(ctx, err, req.Timeout)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodySnippetSize))
		zap.L().Warn("ai provider non-2xx",
			zap.String("provider", "openai"),
			zap.String("model", req.Model),
			zap.Int("status", resp.StatusCode),
			zap.Duration("latency", time.Since(start)),
		)
		return "", &domain.ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctxErr := classifyTransportError(ctx, err, req.Timeout); errors.Is(ctxErr, domain.ErrTimeout) {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: decode provider envelope: %v", domain.ErrMalformedResponse, err)
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", domain.ErrEmptyResponse
	}

	zap.L().Debug("ai provider call completed",
		zap.String("provider", "openai"),
		zap.String("model", req.Model),
		zap.Duration("latency", time.Since(start)),
	)
	return out.Choices[0].Message.Content, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// classifyTransportError turns a fired deadline into domain.ErrTimeout.
func classifyTransportError(ctx context.Context, err error, timeout time.Duration) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", domain.ErrTimeout, timeout)
	}
	return fmt.Errorf("ai provider request failed: %w", err)
}

var _ ports.CompletionGateway = (*OpenAIGateway)(nil)
