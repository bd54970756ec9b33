package server

import (
	"log/slog"

	"github.com/PEEKING-web/steam-tracker/internal/config"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
	"github.com/PEEKING-web/steam-tracker/internal/providers"
	"github.com/PEEKING-web/steam-tracker/internal/providers/fixture"
	"github.com/PEEKING-web/steam-tracker/internal/providers/steam"
)

// providerFactory assembles the data provider with shared wrappers.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the configured provider. Steam is wrapped innermost-first in
// a token bucket, a circuit breaker and a retrier, so each retry attempt waits
// for a token and counts against the breaker.
func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	if cfg.Provider != config.ProviderSteam {
		return fixture.New()
	}
	base := steam.NewClient(steam.Config{
		BaseURL: cfg.Steam.BaseURL,
		APIKey:  cfg.Steam.APIKey,
		Timeout: cfg.Steam.Timeout,
		Logger:  f.logger,
	})
	return f.wrap(base, cfg.Steam)
}

func (f providerFactory) wrap(base providers.DataProvider, sc config.SteamConfig) providers.DataProvider {
	limited := providers.NewRateLimitedProvider(base, sc.RequestsPerSecond, sc.Burst, f.logger)
	guarded := providers.NewCircuitBreakerProvider(limited, providers.BreakerConfig{
		Name:     config.ProviderSteam,
		Failures: sc.BreakerFailures,
		Cooldown: sc.BreakerCooldown,
	}, f.logger)
	return providers.NewRetryingProvider(guarded, f.logger, f.metrics, config.ProviderSteam, sc.RetryAttempts, sc.RetryBackoff)
}
