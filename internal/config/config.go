package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"kolpay/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP is populated from HTTP_ variables.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log is populated from LOG_ variables.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql is populated from PSQL_ variables.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Forecast is populated from FORECAST_ variables.
	Forecast configs.Forecast `envPrefix:"FORECAST_"`
}

// Load reads configuration from environment variables into a Config and
// validates the forecast section.
func Load() (Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith is Load with explicit parser options, e.g. a fixed environment
// for tests.
func LoadWith(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	if _, err := cfg.Forecast.Policy(); err != nil {
		return cfg, fmt.Errorf("forecast config: %w", err)
	}
	return cfg, nil
}
