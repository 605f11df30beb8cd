// Package secrets resolves the AI provider API key.
package secrets

import (
	"context"
	"os"
	"strings"
	"sync"

	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

// EnvProvider reads the key from an environment variable on every call.
type EnvProvider struct {
	name   string
	lookup func(string) (string, bool)
}

func NewEnvProvider(name string) *EnvProvider {
	return &EnvProvider{name: name, lookup: os.LookupEnv}
}

func (p *EnvProvider) APIKey(_ context.Context) (string, error) {
	value, ok := p.lookup(p.name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", domain.ErrNotConfigured
	}
	return strings.TrimSpace(value), nil
}

// CachedProvider memoizes the first key successfully resolved by next.
// Failures are not cached, so a key configured later is picked up.
type CachedProvider struct {
	next ports.SecretProvider

	mu  sync.Mutex
	key string
}

func NewCachedProvider(next ports.SecretProvider) *CachedProvider {
	return &CachedProvider{next: next}
}

func (p *CachedProvider) APIKey(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != "" {
		return p.key, nil
	}

	key, err := p.next.APIKey(ctx)
	if err != nil {
		return "", err
	}
	p.key = key
	return key, nil
}

var (
	_ ports.SecretProvider = (*EnvProvider)(nil)
	_ ports.SecretProvider = (*CachedProvider)(nil)
)
