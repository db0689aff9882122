package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Extrato"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	API struct {
		BaseURL string        `envconfig:"STATEMENT_API_BASE_URL" default:"https://espresso-banking-api-q3-2025-bb3079ecefeb.herokuapp.com"`
		Token   string        `envconfig:"STATEMENT_API_TOKEN"`
		Timeout time.Duration `envconfig:"STATEMENT_API_TIMEOUT" default:"30s"`
	}

	// Secret enables HS256 bearer auth on the development server when set.
	Auth struct {
		Secret string `envconfig:"STATEMENT_API_SECRET"`
	}

	Statement struct {
		PageSize   int `envconfig:"STATEMENT_PAGE_SIZE" default:"10"`
		ChartLimit int `envconfig:"STATEMENT_CHART_LIMIT" default:"1000"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
