package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// minSecretLength is the shortest HS256 signing secret accepted at startup.
const minSecretLength = 32

// DonationServiceConfig holds everything the donation service reads from the environment.
type DonationServiceConfig struct {
	Port            int           `env:"PORT"               envDefault:"5000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"  envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"   envDefault:"10s"`

	Mongo MongoConfig `envPrefix:"MONGODB_"`
	Token TokenConfig
	Log   LogConfig `envPrefix:"LOG_"`
}

// MongoConfig holds the MongoDB connection settings.
type MongoConfig struct {
	URI            string        `env:"URI"             envDefault:"mongodb://localhost:27017"`
	Database       string        `env:"DATABASE"        envDefault:"food_share"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// TokenConfig holds the access token signing settings.
type TokenConfig struct {
	Secret string `env:"JWT_SECRET,unset"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `env:"LEVEL"  envDefault:"info"`
	Pretty bool   `env:"PRETTY" envDefault:"false"`
}

// Load parses the configuration from environment variables and validates it.
func Load() (*DonationServiceConfig, error) {
	cfg, err := env.ParseAs[DonationServiceConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Addr returns the address the HTTP server listens on.
func (c *DonationServiceConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *DonationServiceConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.Token.Secret == "" {
		return errors.New("missing JWT_SECRET environment variable")
	}
	if len(c.Token.Secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	if c.Mongo.URI == "" {
		return errors.New("missing MONGODB_URI environment variable")
	}
	if c.Mongo.Database == "" {
		return errors.New("missing MONGODB_DATABASE environment variable")
	}

	return nil
}
