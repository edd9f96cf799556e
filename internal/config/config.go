package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment
type Config struct {
	// HTTPAddr is the listen address of the API
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// KeyPrefix namespaces every Redis key
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"prizedraw:"`

	// StorageTimeout bounds each Redis round trip
	StorageTimeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"5s"`

	// RandomSeed makes draws reproducible when non-zero
	RandomSeed int64 `env:"RANDOM_SEED"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT"`
}

// Load reads an optional dotenv file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.StorageTimeout <= 0 {
		return nil, fmt.Errorf("STORAGE_TIMEOUT must be positive, got %s", cfg.StorageTimeout)
	}

	return cfg, nil
}
