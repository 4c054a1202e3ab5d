// Package config has the configuration for the conversion tools
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment is the deployment environment the tools run in
type Environment string

const (
	EnvDevelopment Environment = "dev"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "prod"
	EnvTest        Environment = "test"
)

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment maps an ENV value, including the long forms, to an Environment
func ParseEnvironment(value string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "development":
		return EnvDevelopment, nil
	case "staging":
		return EnvStaging, nil
	case "prod", "production":
		return EnvProduction, nil
	case "test":
		return EnvTest, nil
	}
	return EnvDevelopment, fmt.Errorf("ENV must be one of: [dev staging prod test], got: %s", value)
}

// Default limits of the two pipelines
const (
	DefaultMaxFiles       = 10
	DefaultSampleMaxFiles = 2
	DefaultSampleMaxLines = 999
)

// Config holds all application configuration
type Config struct {
	Env              Environment
	LogLevel         string
	LogDir           string // Empty disables the run log file
	DBPath           string // Root folder holding the numbered data folders
	OutputPath       string
	SampleOutputPath string
	MaxFiles         int // Files read per folder by the full pipeline
	SampleMaxFiles   int // Files read per folder by the sample pipeline
	SampleMaxLines   int // Lines read per file by the sample pipeline
	MetricsFile      string
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:         strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		LogDir:           os.Getenv("LOG_DIR"),
		DBPath:           getEnvWithDefault("DB_PATH", "../../DB"),
		OutputPath:       getEnvWithDefault("OUTPUT_PATH", "../src/data/disability-data.json"),
		SampleOutputPath: getEnvWithDefault("SAMPLE_OUTPUT_PATH", "../src/data/sample-data.json"),
		MaxFiles:         getIntEnvWithDefault("MAX_FILES", DefaultMaxFiles),
		SampleMaxFiles:   getIntEnvWithDefault("SAMPLE_MAX_FILES", DefaultSampleMaxFiles),
		SampleMaxLines:   getIntEnvWithDefault("SAMPLE_MAX_LINES", DefaultSampleMaxLines),
		MetricsFile:      os.Getenv("METRICS_FILE"),
	}

	if _, set := os.LookupEnv("LOG_DIR"); !set {
		cfg.LogDir = "logs"
	}

	env, err := ParseEnvironment(getEnvWithDefault("ENV", EnvDevelopment.String()))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid ENV: %w", err)
	}
	cfg.Env = env

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if strings.TrimSpace(cfg.DBPath) == "" {
		return fmt.Errorf("invalid DB_PATH: DB_PATH cannot be empty")
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return fmt.Errorf("invalid OUTPUT_PATH: OUTPUT_PATH cannot be empty")
	}

	if strings.TrimSpace(cfg.SampleOutputPath) == "" {
		return fmt.Errorf("invalid SAMPLE_OUTPUT_PATH: SAMPLE_OUTPUT_PATH cannot be empty")
	}

	if err := validateLimit(cfg.MaxFiles, "MAX_FILES"); err != nil {
		return fmt.Errorf("invalid MAX_FILES: %w", err)
	}

	if err := validateLimit(cfg.SampleMaxFiles, "SAMPLE_MAX_FILES"); err != nil {
		return fmt.Errorf("invalid SAMPLE_MAX_FILES: %w", err)
	}

	if err := validateLimit(cfg.SampleMaxLines, "SAMPLE_MAX_LINES"); err != nil {
		return fmt.Errorf("invalid SAMPLE_MAX_LINES: %w", err)
	}

	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env Environment) error {
	if env == "" {
		return fmt.Errorf("ENV cannot be empty")
	}

	validEnvs := []Environment{EnvDevelopment, EnvStaging, EnvProduction, EnvTest}

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateLimit validates a file or line cap. Zero means no cap.
func validateLimit(limit int, configName string) error {
	if limit < 0 {
		return fmt.Errorf("%s cannot be negative, got: %d", configName, limit)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"ENV",
		"LOG_LEVEL",
		"LOG_DIR",
		"DB_PATH",
		"OUTPUT_PATH",
		"SAMPLE_OUTPUT_PATH",
		"MAX_FILES",
		"SAMPLE_MAX_FILES",
		"SAMPLE_MAX_LINES",
		"METRICS_FILE",
	}
}
