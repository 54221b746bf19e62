package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds process settings read from the environment. Command line
// flags take their defaults from it.
type Runtime struct {
	ConfigDir   string `env:"DUEL_CONFIG_DIR" envDefault:"assets"`
	Seed        int64  `env:"DUEL_SEED" envDefault:"12345"`
	Runs        int    `env:"DUEL_RUNS" envDefault:"1"`
	Workers     int    `env:"DUEL_WORKERS" envDefault:"8"`
	Out         string `env:"DUEL_OUT" envDefault:"out.json"`
	StatInit    string `env:"DUEL_STAT_INIT"`
	MetricsFile string `env:"DUEL_METRICS_FILE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}

func LoadRuntime() (*Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &rt, nil
}
