package config

import (
	"os"
	"strconv"

	"fluxion/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Survey  SurveyConfig
	Logging LoggingConfig
}

// SurveyConfig holds the default survey parameters. Command line flags
// override these per invocation.
type SurveyConfig struct {
	Category        string
	Ports           int
	MaxPorts        int
	ConserveFlux    bool
	CollectAccepted bool
	ProgressEvery   uint64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Survey: SurveyConfig{
			Category:        getEnvOrDefault("FLUXION_CATEGORY", "polarized-state"),
			Ports:           getEnvIntOrDefault("FLUXION_PORTS", 1),
			MaxPorts:        getEnvIntOrDefault("FLUXION_MAX_PORTS", 3),
			ConserveFlux:    getEnvBoolOrDefault("FLUXION_CONSERVE_FLUX", true),
			CollectAccepted: getEnvBoolOrDefault("FLUXION_COLLECT_ACCEPTED", true),
			ProgressEvery:   getEnvUint64OrDefault("FLUXION_PROGRESS_EVERY", 1_000_000),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("FLUXION_LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Survey.Ports < 1 {
		return errors.ConfigInvalid("FLUXION_PORTS must be at least 1")
	}
	if config.Survey.MaxPorts < 1 {
		return errors.ConfigInvalid("FLUXION_MAX_PORTS must be at least 1")
	}
	if config.Survey.ProgressEvery < 1 {
		return errors.ConfigInvalid("FLUXION_PROGRESS_EVERY must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvUint64OrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}
