package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/config"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newLimiter(t *testing.T) ratelimit.AdaptiveLimiter {
	t.Helper()
	l, err := ratelimit.NewAdaptiveLimiter(config.RateLimitConfig{
		RequestsPerSecond: 100,
		Burst:             10,
		MinBackoff:        100 * time.Millisecond,
		MaxBackoff:        time.Second,
	})
	require.NoError(t, err)
	return l
}

func TestNewAdaptiveLimiter(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.RateLimitConfig
		expectError bool
		expected    time.Duration
	}{
		{name: "defaults", cfg: config.RateLimitConfig{}, expected: 250 * time.Millisecond},
		{name: "custom minimum", cfg: config.RateLimitConfig{MinBackoff: time.Second}, expected: time.Second},
		{name: "negative rate", cfg: config.RateLimitConfig{RequestsPerSecond: -1}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ratelimit.NewAdaptiveLimiter(tt.cfg)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.CurrentBackoff())
		})
	}
}

func TestAdaptiveLimiter_Backoff(t *testing.T) {
	l := newLimiter(t)
	assert.Equal(t, 100*time.Millisecond, l.CurrentBackoff())

	l.OnFailure()
	first := l.CurrentBackoff()
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)

	l.OnFailure()
	l.OnFailure()
	second := l.CurrentBackoff()
	assert.Greater(t, second, first)

	for i := 0; i < 20; i++ {
		l.OnFailure()
	}
	assert.Equal(t, time.Second, l.CurrentBackoff(), "capped at max backoff")

	for i := 0; i < 20; i++ {
		l.OnSuccess()
	}
	assert.Equal(t, 100*time.Millisecond, l.CurrentBackoff(), "recovers to min backoff")
}

func TestDo(t *testing.T) {
	l := newLimiter(t)

	v, err := ratelimit.Do(context.Background(), l, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = ratelimit.Do(context.Background(), l, func(ctx context.Context) (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
	assert.Greater(t, l.CurrentBackoff(), time.Duration(0))

	v, err = ratelimit.Do[int](context.Background(), nil, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDo_CanceledContext(t *testing.T) {
	l, err := ratelimit.NewAdaptiveLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	// consume the single burst token
	_, err = ratelimit.Do(context.Background(), l, func(ctx context.Context) (string, error) { return "", nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err = ratelimit.Do(ctx, l, func(ctx context.Context) (string, error) {
		called = true
		return "", nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
