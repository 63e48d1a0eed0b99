package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration for the backend. Every value can be
// set through the environment, a .env file in the working directory is
// loaded first if present.
type Config struct {
	GinMode   string `envconfig:"GIN_MODE" default:"release"`
	LogFormat string `envconfig:"LOG_FORMAT" default:""`
	Port      int    `envconfig:"PORT" default:"8080"`

	// DSN for the sqlite database. The foreign_keys pragma is appended
	// on connection.
	DatabaseDSN string `envconfig:"DB_DSN" default:"data/lmnpbooks.db"`

	CorsAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:""`
	EnablePprof      bool   `envconfig:"ENABLE_PPROF" default:"false"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	// A missing .env file is not an error, the environment may be set
	// directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
