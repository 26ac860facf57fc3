package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the client needs from the environment.
type Config struct {
	// Port the local UI server listens on.
	Port string `env:"PORT" envDefault:"3000"`

	// APIBaseURL is the GrubNGo backend, including the version prefix.
	APIBaseURL string `env:"GRUBNGO_API_URL" envDefault:"http://localhost:8000/api/v1"`

	// HTTPTimeout applies to every backend call.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// RedisAddr enables durable session storage. Empty means the session
	// lives only as long as the process (in-memory store).
	RedisAddr string `env:"REDIS_ADDR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
