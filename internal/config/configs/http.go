package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	// WriteTimeout bounds how long writing a response may take.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}
