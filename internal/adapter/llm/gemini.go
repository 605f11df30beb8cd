package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

// GeminiGateway serves the same completion contract through the Gemini API.
type GeminiGateway struct {
	secrets    ports.SecretProvider
	httpClient *http.Client
	baseURL    string

	mu     sync.Mutex
	client *genai.Client
	key    string
}

func NewGeminiGateway(secrets ports.SecretProvider, httpClient *http.Client, baseURL string) *GeminiGateway {
	return &GeminiGateway{secrets: secrets, httpClient: httpClient, baseURL: baseURL}
}

func (g *GeminiGateway) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	apiKey, err := g.secrets.APIKey(ctx)
	if err != nil {
		return "", err
	}

	client, err := g.clientFor(ctx, apiKey)
	if err != nil {
		return "", err
	}

	ctx, cancel := withTimeout(ctx, req.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		MaxOutputTokens:   int32(req.MaxTokens),
		Temperature:       genai.Ptr(float32(req.Temperature)),
	})
	if err != nil {
		return "", classifyGeminiError(ctx, err, req.Timeout)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyResponse
	}

	zap.L().Debug("ai provider call completed",
		zap.String("provider", "gemini"),
		zap.String("model", req.Model),
		zap.Duration("latency", time.Since(start)),
	)
	return text, nil
}

func (g *GeminiGateway) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil && g.key == apiKey {
		return g.client, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	g.key = apiKey
	return client, nil
}

func classifyGeminiError(ctx context.Context, err error, timeout time.Duration) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		zap.L().Warn("ai provider non-2xx",
			zap.String("provider", "gemini"),
			zap.Int("status", apiErr.Code),
			zap.String("status_text", apiErr.Status),
		)
		return &domain.ProviderError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	return classifyTransportError(ctx, err, timeout)
}

var _ ports.CompletionGateway = (*GeminiGateway)(nil)
