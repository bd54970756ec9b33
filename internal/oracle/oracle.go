// Package oracle defines the text-completion capability the recommender
// consults, plus decorators shared by every backend.
package oracle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
)

// ErrDisabled is returned by Disabled for every call.
var ErrDisabled = errors.New("oracle disabled: no api key configured")

// Options tune a single completion.
type Options struct {
	Temperature float64
	MaxTokens   int
	// WantJSON asks the backend to constrain output to a JSON object. It is a
	// hint; callers still parse defensively.
	WantJSON bool
}

// Oracle produces a completion for a system and user prompt pair.
type Oracle interface {
	Complete(ctx context.Context, system, user string, opts Options) (string, error)
}

// Disabled is the oracle used when no backend is configured. Recommendations
// then always come from the playtime fallback.
type Disabled struct{}

func (Disabled) Complete(context.Context, string, string, Options) (string, error) {
	return "", ErrDisabled
}

type instrumented struct {
	next     Oracle
	model    string
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// WithTelemetry records latency and failures of every call under model.
func WithTelemetry(next Oracle, model string, recorder *metrics.Recorder, logger *slog.Logger) Oracle {
	return &instrumented{next: next, model: model, recorder: recorder, logger: logger}
}

func (o *instrumented) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	start := time.Now()
	reply, err := o.next.Complete(ctx, system, user, opts)
	elapsed := time.Since(start)
	o.recorder.RecordOracleCall(o.model, elapsed, err)

	logger := logging.FromContext(ctx, o.logger)
	if err != nil {
		logging.Warn(logger, "oracle call failed",
			logging.FieldModel, o.model,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			logging.FieldError, err,
		)
		return "", err
	}
	if logger != nil {
		logger.Debug("oracle call complete",
			logging.FieldModel, o.model,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"reply_bytes", len(reply),
		)
	}
	return reply, nil
}
