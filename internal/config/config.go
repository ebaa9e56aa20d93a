package config

import "fmt"

type Config struct {
	Env             string
	DatabaseURL     string
	HTTPListenAddr  string
	DefaultGoal     string
	DefaultDuration float64
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.DefaultDuration < 15 || c.DefaultDuration > 120 {
		return fmt.Errorf("DEFAULT_TARGET_DURATION must be between 15 and 120 minutes, got %g", c.DefaultDuration)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "DATABASE_URL", value: c.DatabaseURL},
		{name: "HTTP_LISTEN_ADDR", value: c.HTTPListenAddr},
		{name: "DEFAULT_GOAL", value: c.DefaultGoal},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
