package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}

	if cfg.Port != "3001" {
		t.Fatalf("expected default port 3001, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected default provider %s, got %s", ProviderFixture, cfg.Provider)
	}
	if cfg.Steam.BaseURL != "https://api.steampowered.com" {
		t.Fatalf("unexpected steam base url %s", cfg.Steam.BaseURL)
	}
	if cfg.Oracle.Enabled() {
		t.Fatal("expected oracle disabled without api key")
	}
	if cfg.Oracle.Model != "llama-3.3-70b-versatile" || cfg.Oracle.MaxTokens != 500 {
		t.Fatalf("unexpected oracle defaults %+v", cfg.Oracle)
	}
	if cfg.Auth.SessionTTL != 168*time.Hour {
		t.Fatalf("expected one week session ttl, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.SessionSecret != devSessionSecret {
		t.Fatal("expected dev session secret when unset")
	}
	if cfg.Store.Driver != StoreSQLite {
		t.Fatalf("expected sqlite store by default, got %s", cfg.Store.Driver)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("PROVIDER", "Steam")
	t.Setenv("STEAM_API_KEY", "secret-key")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("ORACLE_TEMPERATURE", "0.2")
	t.Setenv("FRONTEND_URL", "http://example.com/")
	t.Setenv("RECOMMEND_RATE_WINDOW", "30s")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected overrides to load, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderSteam {
		t.Fatalf("expected provider steam, got %s", cfg.Provider)
	}
	if cfg.Steam.APIKey != "secret-key" {
		t.Fatalf("expected steam api key override, got %s", cfg.Steam.APIKey)
	}
	if !cfg.Oracle.Enabled() || cfg.Oracle.Temperature != 0.2 {
		t.Fatalf("unexpected oracle config %+v", cfg.Oracle)
	}
	if cfg.FrontendURL != "http://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.FrontendURL)
	}
	if cfg.RateLimit.RecommendWindow != 30*time.Second {
		t.Fatalf("expected 30s window, got %s", cfg.RateLimit.RecommendWindow)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Fatalf("expected memory store, got %s", cfg.Store.Driver)
	}
}

func TestLoadSteamProviderRequiresKey(t *testing.T) {
	t.Setenv("PROVIDER", "steam")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "STEAM_API_KEY") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestLoadInvalidDurationFails(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateRejectsShortSecretAndUnknownValues(t *testing.T) {
	cfg := Config{
		Provider: "nope",
		Store:    StoreConfig{Driver: "mongo"},
		Auth:     AuthConfig{SessionSecret: "short"},
		Oracle:   OracleConfig{MaxTokens: 0},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"PROVIDER", "STORE_DRIVER", "SESSION_SECRET", "ORACLE_MAX_TOKENS"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got %v", want, err)
		}
	}
}
