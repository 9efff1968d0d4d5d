package config

import "time"

type StatsAPI struct {
	BaseURL        string        `env:"STATS_API_BASE_URL" envDefault:"http://127.0.0.1:5000"`
	Timeout        time.Duration `env:"STATS_API_TIMEOUT" envDefault:"15s"`
	LogFieldMaxLen int           `env:"STATS_API_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Chart struct {
	Width     int           `env:"CHART_WIDTH" envDefault:"800"`
	Height    int           `env:"CHART_HEIGHT" envDefault:"400"`
	CanvasTTL time.Duration `env:"CHART_CANVAS_TTL" envDefault:"30m"`
}
