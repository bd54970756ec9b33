package config

// SteamConfig controls how we talk to the Steam Web API.
type SteamConfig struct {
	APIKey            string   `env:"STEAM_API_KEY"`
	BaseURL           string   `env:"STEAM_BASE_URL" envDefault:"https://api.steampowered.com"`
	OpenIDURL         string   `env:"STEAM_OPENID_URL" envDefault:"https://steamcommunity.com/openid/login"`
	Timeout           Duration `env:"STEAM_TIMEOUT" envDefault:"10s"`
	RequestsPerSecond float64  `env:"STEAM_REQUESTS_PER_SECOND" envDefault:"5"`
	Burst             int      `env:"STEAM_BURST" envDefault:"10"`
	RetryAttempts     int      `env:"STEAM_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBackoff      Duration `env:"STEAM_RETRY_BACKOFF" envDefault:"200ms"`
	BreakerFailures   uint32   `env:"STEAM_BREAKER_FAILURES" envDefault:"5"`
	BreakerCooldown   Duration `env:"STEAM_BREAKER_COOLDOWN" envDefault:"30s"`
}
