package config

// OracleConfig controls the LLM used for recommendations. An empty API key
// disables the oracle and every request is served by the fallback.
type OracleConfig struct {
	APIKey      string   `env:"GROQ_API_KEY"`
	BaseURL     string   `env:"ORACLE_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model       string   `env:"ORACLE_MODEL" envDefault:"llama-3.3-70b-versatile"`
	Temperature float64  `env:"ORACLE_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int      `env:"ORACLE_MAX_TOKENS" envDefault:"500"`
	Timeout     Duration `env:"ORACLE_TIMEOUT" envDefault:"0s"`
}

// Enabled reports whether an API key was supplied.
func (o OracleConfig) Enabled() bool {
	return o.APIKey != ""
}
