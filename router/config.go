package router

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the default middleware chain.
type Config struct {
	// Timeout bounds each request. Zero disables the timeout middleware.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	CORS    CORSConfig    `envPrefix:"CORS_"`
	// QuietdownRoutes are paths the logging middleware skips, such as probes.
	QuietdownRoutes []string `env:"QUIETDOWN_ROUTES" envSeparator:","`
	// HideHeaders are request headers whose values are redacted in logs.
	HideHeaders []string `env:"HIDE_HEADERS" envSeparator:","`
}

// CORSConfig configures the CORS middleware. It is applied only when at
// least one origin is listed; "*" allows any origin.
type CORSConfig struct {
	Origins          []string `env:"ORIGINS" envSeparator:","`
	Methods          []string `env:"METHODS" envSeparator:","`
	Headers          []string `env:"HEADERS" envSeparator:","`
	AllowCredentials bool     `env:"ALLOW_CREDENTIALS"`
}

// ConfigFromEnv reads a Config from environment variables named with
// prefix, for example API_TIMEOUT or API_CORS_ORIGINS for prefix "API_".
func ConfigFromEnv(prefix string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("router: parse config from environment: %w", err)
	}
	return cfg, nil
}
