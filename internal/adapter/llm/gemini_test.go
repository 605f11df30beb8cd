package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"todoai/internal/core/domain"
)

func TestGeminiGateway_Complete_NotConfigured(t *testing.T) {
	gateway := NewGeminiGateway(staticSecrets{err: domain.ErrNotConfigured}, http.DefaultClient, "")

	_, err := gateway.Complete(context.Background(), testCompletionRequest())

	require.ErrorIs(t, err, domain.ErrNotConfigured)
	require.Nil(t, gateway.client)
}

func TestClassifyGeminiError(t *testing.T) {
	apiErr := fmt.Errorf("generate: %w", genai.APIError{Code: 503, Message: "overloaded", Status: "UNAVAILABLE"})

	err := classifyGeminiError(context.Background(), apiErr, time.Second)

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, 503, providerErr.StatusCode)
	require.True(t, providerErr.Retryable())
}

func TestClassifyGeminiError_Deadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := classifyGeminiError(ctx, errors.New("transport closed"), time.Nanosecond)

	require.ErrorIs(t, err, domain.ErrTimeout)
}
