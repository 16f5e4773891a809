package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultDataURL is the CSSE confirmed-cases time series.
const DefaultDataURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_19-covid-Confirmed.csv"

// Config is the server configuration, read from the environment.
type Config struct {
	Addr         string        `env:"CASES_ADDR" envDefault:":8080"`
	DataURL      string        `env:"CASES_DATA_URL" envDefault:"https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_19-covid-Confirmed.csv"`
	DataFile     string        `env:"CASES_DATA_FILE"` // overrides DataURL when set
	FetchTimeout time.Duration `env:"CASES_FETCH_TIMEOUT" envDefault:"30s"`
	Region       string        `env:"CASES_REGION" envDefault:"Poland"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding  string        `env:"LOG_ENCODING" envDefault:"json"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
