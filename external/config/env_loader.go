package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/numanijaz119/Foxingfit-Smart-generator/internal/config"
)

type envConfig struct {
	Env             string  `env:"ENV" envDefault:"production"`
	DatabaseURL     string  `env:"DATABASE_URL,required"`
	HTTPListenAddr  string  `env:"HTTP_LISTEN_ADDR" envDefault:":8080"`
	DefaultGoal     string  `env:"DEFAULT_GOAL" envDefault:"allround"`
	DefaultDuration float64 `env:"DEFAULT_TARGET_DURATION" envDefault:"60"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:             raw.Env,
		DatabaseURL:     raw.DatabaseURL,
		HTTPListenAddr:  raw.HTTPListenAddr,
		DefaultGoal:     raw.DefaultGoal,
		DefaultDuration: raw.DefaultDuration,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
