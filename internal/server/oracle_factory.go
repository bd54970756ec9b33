package server

import (
	"log/slog"

	"github.com/PEEKING-web/steam-tracker/internal/config"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
	"github.com/PEEKING-web/steam-tracker/internal/oracle"
	"github.com/PEEKING-web/steam-tracker/internal/oracle/groq"
)

// buildOracle returns the Groq-backed oracle, or a disabled one when no key
// is configured so every recommendation takes the fallback path.
func buildOracle(cfg config.OracleConfig, logger *slog.Logger, recorder *metrics.Recorder) oracle.Oracle {
	if !cfg.Enabled() {
		logging.Warn(logger, "oracle disabled, recommendations will use the fallback")
		return oracle.Disabled{}
	}
	client := groq.New(groq.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	return oracle.WithTelemetry(client, client.Model(), recorder, logger)
}
