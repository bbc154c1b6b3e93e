package configs

// CORS configures which browser origins may call the API.
type CORS struct {
	// AllowedOrigins is a comma-separated list of origins. "*" allows
	// any origin, which is only appropriate outside production.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}
