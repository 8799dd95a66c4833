package config

import (
	"fmt"

	pkgconfig "github.com/utafrali/cartsim/pkg/config"
)

// Store backend names.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config holds all configuration for the cart simulator.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Persistence slot
	Store     string `env:"CART_STORE" envDefault:"file"`
	StorePath string `env:"CART_STORE_PATH" envDefault:"cart.json"`
	CartSlot  string `env:"CART_SLOT" envDefault:"cart"`

	// Redis (only used when CART_STORE=redis)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours for the redis slot (default: 7 days); 0 disables expiry.
	CartTTL int `env:"CART_TTL_HOURS" envDefault:"168"`
}

// Load reads configuration from the environment, preceded by an optional
// .env file in the working directory.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.LoadWithDotenv(cfg, ".env"); err != nil {
		return nil, fmt.Errorf("load cartsim config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	switch c.Store {
	case StoreFile, StoreRedis:
	default:
		return fmt.Errorf("invalid cart store %q (want %q or %q)", c.Store, StoreFile, StoreRedis)
	}
	if c.Store == StoreFile && c.StorePath == "" {
		return fmt.Errorf("cart store path must not be empty")
	}
	if c.CartSlot == "" {
		return fmt.Errorf("cart slot name must not be empty")
	}
	if c.CartTTL < 0 {
		return fmt.Errorf("invalid cart TTL: %d", c.CartTTL)
	}
	return nil
}
