package llm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

// RetryingGateway retries timeouts and retryable provider failures with
// exponential backoff. Any other error is returned after the first attempt.
type RetryingGateway struct {
	next            ports.CompletionGateway
	maxAttempts     int
	initialInterval time.Duration
}

func NewRetryingGateway(next ports.CompletionGateway, maxAttempts int, initialInterval time.Duration) *RetryingGateway {
	if initialInterval <= 0 {
		initialInterval = backoff.DefaultInitialInterval
	}
	return &RetryingGateway{next: next, maxAttempts: maxAttempts, initialInterval: initialInterval}
}

func (g *RetryingGateway) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if g.maxAttempts <= 1 {
		return g.next.Complete(ctx, req)
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = g.initialInterval
	expo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(g.maxAttempts-1)), ctx)

	var completion string
	attempt := 0
	op := func() error {
		attempt++
		out, err := g.next.Complete(ctx, req)
		if err == nil {
			completion = out
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}
		zap.L().Warn("ai completion attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", g.maxAttempts),
			zap.Error(err),
		)
		return err
	}

	if err := backoff.Retry(op, policy); err != nil {
		return "", err
	}
	return completion, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, domain.ErrTimeout) {
		return true
	}
	var providerErr *domain.ProviderError
	return errors.As(err, &providerErr) && providerErr.Retryable()
}

var _ ports.CompletionGateway = (*RetryingGateway)(nil)
