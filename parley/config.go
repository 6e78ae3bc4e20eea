package parley

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls how the client connects.
type Config struct {
	URL              string        `env:"PARLEY_URL"`
	Username         string        `env:"PARLEY_USERNAME"`
	HandshakeTimeout time.Duration `env:"PARLEY_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	ReadTimeout      time.Duration `env:"PARLEY_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout     time.Duration `env:"PARLEY_WRITE_TIMEOUT" envDefault:"10s"`
	SendBuffer       int           `env:"PARLEY_SEND_BUFFER" envDefault:"16"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: 10 * time.Second,
		ReadTimeout:      30 * time.Second,
		WriteTimeout:     10 * time.Second,
		SendBuffer:       16,
	}
}

// ConfigFromEnv loads config from PARLEY_* environment variables, reading a
// .env file first when one exists.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, WrapError(ErrorInvalidConfig, "parse env", err)
	}
	return cfg, nil
}
