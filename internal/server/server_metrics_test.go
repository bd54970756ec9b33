package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/PEEKING-web/steam-tracker/internal/config"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
	"github.com/PEEKING-web/steam-tracker/internal/providers/fixture"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv, err := newServerWithMetrics(context.Background(), cfg, nil, fixture.New(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsEnabledStartsMetricsServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "0", ServiceName: "steam-tracker"}

	srv, err := newServerWithMetrics(context.Background(), cfg, nil, fixture.New(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if srv.metricsServer == nil || srv.metricsServer.Addr() != ":0" {
		t.Fatalf("expected metrics server on configured port")
	}
	if err := srv.metricsStop(context.Background()); err != nil {
		t.Fatalf("metrics stop: %v", err)
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv, err := newServerWithMetrics(context.Background(), cfg, nil, fixture.New(), rec)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for injected recorder")
	}
}
