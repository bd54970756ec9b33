package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string `env:"PORT" envDefault:"3001"`
	Provider    string `env:"PROVIDER" envDefault:"fixture"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	BackendURL  string `env:"BACKEND_URL" envDefault:"http://localhost:3001"`

	Log       LogConfig
	Steam     SteamConfig
	Oracle    OracleConfig
	Auth      AuthConfig
	Store     StoreConfig
	Metrics   MetricsConfig
	RateLimit RateLimitConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// RateLimitConfig bounds how often a client may ask for recommendations.
type RateLimitConfig struct {
	RecommendRequests int      `env:"RECOMMEND_RATE_LIMIT" envDefault:"10"`
	RecommendWindow   Duration `env:"RECOMMEND_RATE_WINDOW" envDefault:"1m"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.FrontendURL = strings.TrimSuffix(cfg.FrontendURL, "/")
	cfg.BackendURL = strings.TrimSuffix(cfg.BackendURL, "/")
	if cfg.Auth.SessionSecret == "" {
		cfg.Auth.SessionSecret = devSessionSecret
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports combinations that cannot run.
func (c Config) Validate() error {
	var errs []error
	switch c.Provider {
	case ProviderSteam:
		if c.Steam.APIKey == "" {
			errs = append(errs, errors.New("STEAM_API_KEY is required when PROVIDER=steam"))
		}
	case ProviderFixture:
	default:
		errs = append(errs, fmt.Errorf("unknown PROVIDER %q", c.Provider))
	}
	switch c.Store.Driver {
	case StoreSQLite, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if len(c.Auth.SessionSecret) < 32 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 32 characters"))
	}
	if c.Oracle.MaxTokens <= 0 {
		errs = append(errs, errors.New("ORACLE_MAX_TOKENS must be positive"))
	}
	return errors.Join(errs...)
}
