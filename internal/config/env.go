package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// parseEnv loads tagged fields from the process environment.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
