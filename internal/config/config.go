package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort uint16 `env:"PORT" envDefault:"8080"`

	Auth0 Auth0

	DatabaseURL      string `env:"DATABASE_URL,required,notEmpty"`
	DatabaseMaxConns int    `env:"DATABASE_MAX_CONNS" envDefault:"5"`

	// Empty means every origin is allowed.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Auth0 holds the tenant and application settings for the hosted login page.
type Auth0 struct {
	Domain       string `env:"AUTH0_DOMAIN,required,notEmpty"`
	ClientID     string `env:"AUTH0_CLIENT_ID,required,notEmpty"`
	ClientSecret string `env:"AUTH0_CLIENT_SECRET,required,notEmpty"`
	RedirectURI  string `env:"AUTH0_REDIRECT_URI" envDefault:"http://localhost:8080/callback"`
}

// Load reads the process environment. Any missing required variable or
// unparsable value is an error; callers are expected to abort.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
