package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wallace-museum/nft-importer/internal/config"
	"github.com/wallace-museum/nft-importer/internal/logger"
)

// AdaptiveLimiter throttles outbound calls and widens the delay between
// request groups while an upstream keeps failing
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=AdaptiveLimiter=MockAdaptiveLimiter
type AdaptiveLimiter interface {
	// Wait blocks until a request token is available
	Wait(ctx context.Context) error

	// CurrentBackoff is the delay to observe before the next request group
	CurrentBackoff() time.Duration

	// OnSuccess records a successful upstream call and shrinks the backoff
	OnSuccess()

	// OnFailure records a failed upstream call and grows the backoff
	OnFailure()
}

type adaptiveLimiter struct {
	mu         sync.Mutex
	limiter    *rate.Limiter
	backoff    *backoff.ExponentialBackOff
	current    time.Duration
	minBackoff time.Duration
	maxBackoff time.Duration
}

// NewAdaptiveLimiter creates a limiter from configuration, applying defaults for zero values
func NewAdaptiveLimiter(cfg config.RateLimitConfig) (AdaptiveLimiter, error) {
	if cfg.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("requests_per_second must not be negative: %v", cfg.RequestsPerSecond)
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MinBackoff <= 0 {
		cfg.MinBackoff = 250 * time.Millisecond
	}
	if cfg.MaxBackoff < cfg.MinBackoff {
		cfg.MaxBackoff = cfg.MinBackoff
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.MinBackoff
	b.MaxInterval = cfg.MaxBackoff
	b.MaxElapsedTime = 0 // never stop growing; OnSuccess resets it
	b.Multiplier = 2.0
	b.RandomizationFactor = 0
	b.Reset()

	return &adaptiveLimiter{
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		backoff:    b,
		current:    cfg.MinBackoff,
		minBackoff: cfg.MinBackoff,
		maxBackoff: cfg.MaxBackoff,
	}, nil
}

func (l *adaptiveLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

func (l *adaptiveLimiter) CurrentBackoff() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

func (l *adaptiveLimiter) OnSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current /= 2
	if l.current <= l.minBackoff {
		l.current = l.minBackoff
		l.backoff.Reset()
	}
}

func (l *adaptiveLimiter) OnFailure() {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.backoff.NextBackOff()
	if next == backoff.Stop || next > l.maxBackoff {
		next = l.maxBackoff
	}
	if next > l.current {
		l.current = next
	}
	logger.Debug("upstream failure, widening backoff", zap.Duration("backoff", l.current))
}

// Do waits for a token, runs fn and feeds the outcome back into the limiter.
// A nil limiter runs fn directly.
func Do[T any](ctx context.Context, l AdaptiveLimiter, fn func(ctx context.Context) (T, error)) (T, error) {
	if l == nil {
		return fn(ctx)
	}

	var zero T
	if err := l.Wait(ctx); err != nil {
		return zero, fmt.Errorf("failed to acquire rate limit token: %w", err)
	}

	result, err := fn(ctx)
	if err != nil {
		l.OnFailure()
		return result, err
	}
	l.OnSuccess()
	return result, nil
}
