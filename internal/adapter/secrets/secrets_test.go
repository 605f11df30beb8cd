package secrets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"todoai/internal/core/domain"
)

type countingProvider struct {
	calls int
	key   string
	err   error
}

func (p *countingProvider) APIKey(context.Context) (string, error) {
	p.calls++
	return p.key, p.err
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("TODOAI_TEST_KEY", "  sk-test  ")
	key, err := NewEnvProvider("TODOAI_TEST_KEY").APIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sk-test", key)

	t.Setenv("TODOAI_TEST_KEY", " ")
	_, err = NewEnvProvider("TODOAI_TEST_KEY").APIKey(context.Background())
	require.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = NewEnvProvider("TODOAI_TEST_KEY_THAT_IS_NEVER_SET").APIKey(context.Background())
	require.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestCachedProvider_CachesSuccessOnly(t *testing.T) {
	next := &countingProvider{err: domain.ErrNotConfigured}
	cached := NewCachedProvider(next)

	_, err := cached.APIKey(context.Background())
	require.ErrorIs(t, err, domain.ErrNotConfigured)

	next.key, next.err = "sk-live", nil
	for i := 0; i < 3; i++ {
		key, err := cached.APIKey(context.Background())
		require.NoError(t, err)
		require.Equal(t, "sk-live", key)
	}
	require.Equal(t, 2, next.calls)
}
