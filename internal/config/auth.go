package config

// AuthConfig controls the signed session cookie issued after Steam login.
type AuthConfig struct {
	SessionSecret string   `env:"SESSION_SECRET"`
	SessionTTL    Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieName    string   `env:"SESSION_COOKIE_NAME" envDefault:"steam_tracker_session"`
	CookieSecure  bool     `env:"COOKIE_SECURE" envDefault:"false"`
}
