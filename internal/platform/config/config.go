// Package config builds runtime configuration from the environment so main
// stays lean. A local .env file is honored when present; real environment
// variables always win.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server captures the service configuration.
type Server struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"USERCARDS_ADDR" envDefault:":8080"`

	// UsersURL is the upstream endpoint returning the JSON array of users.
	UsersURL string `env:"USERCARDS_USERS_URL" envDefault:"https://jsonplaceholder.typicode.com/users"`

	// FetchTimeout bounds one upstream request, cancellation included.
	FetchTimeout time.Duration `env:"USERCARDS_FETCH_TIMEOUT" envDefault:"10s"`

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration `env:"USERCARDS_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Environment names the deployment environment for health reporting.
	Environment string `env:"USERCARDS_ENV" envDefault:"development"`
}

// Load reads .env (if any) and parses the environment into a Server config.
func Load() (Server, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
