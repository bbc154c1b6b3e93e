package config

import (
	"github.com/caarlos0/env/v11"

	"biz-awards/internal/config/configs"
)

// Config aggregates all configuration sections for the application.
// Fields are populated from environment variables using the caarlos0/env
// library; the nested structs carry envPrefix tags so their fields parse
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the session token store (REDIS_ prefix).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// CORS configures allowed browser origins (CORS_ prefix).
	CORS configs.CORS `envPrefix:"CORS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
