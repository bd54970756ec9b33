package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PEEKING-web/steam-tracker/internal/app/categories"
	"github.com/PEEKING-web/steam-tracker/internal/app/friends"
	"github.com/PEEKING-web/steam-tracker/internal/app/library"
	"github.com/PEEKING-web/steam-tracker/internal/app/recommend"
	"github.com/PEEKING-web/steam-tracker/internal/app/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/auth"
	"github.com/PEEKING-web/steam-tracker/internal/config"
	httpserver "github.com/PEEKING-web/steam-tracker/internal/http"
	"github.com/PEEKING-web/steam-tracker/internal/http/handlers"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/metrics"
	"github.com/PEEKING-web/steam-tracker/internal/providers"
	"github.com/PEEKING-web/steam-tracker/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider, oracle and store.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	st, err := buildStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	httpSrv, err := buildHTTPServer(cfg, st, provider, logger, recorder)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, st store.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      st,
		httpServer: httpSrv,
	}
}

// NewRecommendService wires the reconciler the same way the HTTP server does.
// The CLI uses it for one-off recommendations.
func NewRecommendService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *recommend.Service {
	provider := newProviderFactory(logger, recorder).build(cfg)
	return newRecommendService(cfg, provider, logger, recorder)
}

func newRecommendService(cfg config.Config, provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder) *recommend.Service {
	reconciler := recommend.NewReconciler(buildOracle(cfg.Oracle, logger, recorder), recommend.Options{
		Temperature: cfg.Oracle.Temperature,
		MaxTokens:   cfg.Oracle.MaxTokens,
	}, logger, recorder)
	return recommend.NewService(provider, reconciler, logger)
}

func buildHTTPServer(cfg config.Config, st store.Store, provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder) (httpServer, error) {
	sess, err := auth.NewSessions(auth.SessionConfig{
		Secret:     cfg.Auth.SessionSecret,
		TTL:        cfg.Auth.SessionTTL,
		CookieName: cfg.Auth.CookieName,
		Secure:     cfg.Auth.CookieSecure || strings.HasPrefix(cfg.FrontendURL, "https://"),
	})
	if err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	returnTo := cfg.BackendURL + "/auth/steam/return"

	handler := handlers.NewHandler(handlers.Deps{
		Library:     library.NewService(provider, logger),
		Friends:     friends.NewService(provider, logger),
		Sessions:    sessions.NewService(st, logger),
		Categories:  categories.NewService(st, logger),
		Recommend:   newRecommendService(cfg, provider, logger, recorder),
		Profiles:    provider,
		Auth:        sess,
		OpenID:      auth.NewOpenID(cfg.Steam.OpenIDURL, cfg.BackendURL, returnTo, nil),
		FrontendURL: cfg.FrontendURL,
		Logger:      logger,
	})
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		FrontendURL:       cfg.FrontendURL,
		Sessions:          sess,
		RecommendRequests: cfg.RateLimit.RecommendRequests,
		RecommendWindow:   cfg.RateLimit.RecommendWindow,
		Logger:            logger,
		Recorder:          recorder,
	})

	return newNetHTTPServer(cfg.Port, router), nil
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err.Error())
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err.Error())
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// The store closes last so in-flight requests can finish their writes.
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logging.Error(s.logger, "failed to close store", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err.Error())
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err.Error())
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
