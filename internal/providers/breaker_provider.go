package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

// BreakerConfig controls when the circuit opens and how long it stays open.
type BreakerConfig struct {
	Name     string
	Failures uint32
	Cooldown time.Duration
}

type breakerProvider struct {
	cb     *gobreaker.CircuitBreaker[any]
	logger *slog.Logger
}

// NewCircuitBreakerProvider fails fast with ErrProviderUnavailable after
// Failures consecutive upstream failures, probing again once Cooldown elapses.
// Client errors such as a private profile do not count against the circuit.
func NewCircuitBreakerProvider(inner DataProvider, cfg BreakerConfig, logger *slog.Logger) DataProvider {
	return decorate(inner, newBreaker(cfg, logger))
}

func newBreaker(cfg BreakerConfig, logger *slog.Logger) *breakerProvider {
	if cfg.Failures == 0 {
		cfg.Failures = defaultBreakerFailures
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultBreakerCooldown
	}
	if cfg.Name == "" {
		cfg.Name = "provider"
	}
	b := &breakerProvider{logger: logger}
	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !IsRetryable(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn(b.logger, "circuit breaker state change",
				logging.FieldProvider, name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return b
}

func (b *breakerProvider) intercept(ctx context.Context, op string, call callFunc) (any, error) {
	out, err := b.cb.Execute(func() (any, error) {
		return call(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrProviderUnavailable, err)
	}
	return out, err
}

// State reports the breaker state for diagnostics.
func (b *breakerProvider) State() string {
	return b.cb.State().String()
}
