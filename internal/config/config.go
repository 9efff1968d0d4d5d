package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	StatsAPI StatsAPI
	Chart    Chart
	Probe    Probe
	Metrics  Metrics
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"airstats"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Load читает .env (если он есть) и переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
