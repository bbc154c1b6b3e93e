package configs

import "time"

// Redis holds configuration for the session token store.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// SessionTTL is how long an anonymous ad session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}
