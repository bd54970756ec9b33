package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/teststubs"
)

func TestRateLimitedProviderAllowsBurst(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 1, 3, nil)

	for i := 0; i < 3; i++ {
		if _, err := rl.FetchOwnedGames(context.Background(), "1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if inner.Calls.Load() != 3 {
		t.Fatalf("expected inner provider called 3 times, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderBlocksUntilToken(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 200, 1, nil)

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := rl.FetchSteamLevel(context.Background(), "1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 4*time.Millisecond {
		t.Fatalf("expected second call to wait for a token, elapsed %s", elapsed)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 0.001, 1, nil)
	_, _ = rl.FetchOwnedGames(context.Background(), "1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchOwnedGames(ctx, "1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, 1, 1, nil)
	if _, err := rl.FetchOwnedGames(context.Background(), "1"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaults(t *testing.T) {
	l := newLimiter(0, 0, nil)
	if l.limiter.Limit() != defaultRequestsPerSecond || l.limiter.Burst() != defaultBurst {
		t.Fatalf("expected default limits, got %v/%d", l.limiter.Limit(), l.limiter.Burst())
	}
}
