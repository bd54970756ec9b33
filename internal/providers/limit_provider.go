package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/PEEKING-web/steam-tracker/internal/logging"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10
)

// rateLimitedProvider paces upstream calls with a token bucket so bursts of
// dashboard requests stay under the Steam quota.
type rateLimitedProvider struct {
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that waits for a token before each call.
// Calls block until a token is available or the context ends.
func NewRateLimitedProvider(next DataProvider, perSecond float64, burst int, logger *slog.Logger) DataProvider {
	return decorate(next, newLimiter(perSecond, burst, logger))
}

func newLimiter(perSecond float64, burst int, logger *slog.Logger) *rateLimitedProvider {
	if perSecond <= 0 {
		perSecond = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &rateLimitedProvider{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) intercept(ctx context.Context, op string, call callFunc) (any, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled",
			logging.FieldOperation, op,
			logging.FieldError, err,
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return call(ctx)
}
