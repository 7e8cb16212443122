package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config, loaded from environment variables
type Config struct {
	Port           string
	Evaluator      string
	EvalDelay      time.Duration // artificial pause before evaluation, not cancellable
	ExportDir      string
	ExportSchedule string
	ExportEnabled  bool
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Evaluator:      getEnvOrDefault("EVALUATOR", "keyword"),
		EvalDelay:      time.Duration(getEnvInt("EVAL_DELAY_MS", 1500)) * time.Millisecond,
		ExportDir:      getEnvOrDefault("EXPORT_DIR", "./exports"),
		ExportSchedule: getEnvOrDefault("EXPORT_SCHEDULE", "@every 1m"),
		ExportEnabled:  getEnvOrDefault("EXPORT_ENABLED", "true") == "true",
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Evaluator != "keyword" {
		return errors.New("unsupported evaluator: " + config.Evaluator + ". Currently supported: keyword")
	}
	if config.EvalDelay < 0 {
		return errors.New("EVAL_DELAY_MS must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
