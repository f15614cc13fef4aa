// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct using `env`
// tags. The storefront keeps all tunables flat on one struct so a deployment
// is fully described by its environment.
//
// Example:
//
//	type Config struct {
//	    HTTPPort     int    `env:"HTTP_PORT" envDefault:"8080"`
//	    StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
