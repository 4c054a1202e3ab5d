package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	// Set valid environment variables
	_ = os.Setenv("ENV", "prod")
	_ = os.Setenv("LOG_LEVEL", "DEBUG")
	_ = os.Setenv("DB_PATH", "/data/DB")
	_ = os.Setenv("OUTPUT_PATH", "/out/full.json")
	_ = os.Setenv("SAMPLE_OUTPUT_PATH", "/out/sample.json")
	_ = os.Setenv("MAX_FILES", "3")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Env != EnvProduction {
		t.Errorf("Expected env prod, got %s", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.DBPath != "/data/DB" {
		t.Errorf("Expected DB path /data/DB, got %s", cfg.DBPath)
	}
	if cfg.OutputPath != "/out/full.json" {
		t.Errorf("Expected output path /out/full.json, got %s", cfg.OutputPath)
	}
	if cfg.SampleOutputPath != "/out/sample.json" {
		t.Errorf("Expected sample output path /out/sample.json, got %s", cfg.SampleOutputPath)
	}
	if cfg.MaxFiles != 3 {
		t.Errorf("Expected max files 3, got %d", cfg.MaxFiles)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Env != EnvDevelopment {
		t.Errorf("Expected default env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("Expected default log dir logs, got %q", cfg.LogDir)
	}
	if cfg.DBPath != "../../DB" {
		t.Errorf("Expected default DB path ../../DB, got %s", cfg.DBPath)
	}
	if cfg.OutputPath != "../src/data/disability-data.json" {
		t.Errorf("Unexpected default output path %s", cfg.OutputPath)
	}
	if cfg.SampleOutputPath != "../src/data/sample-data.json" {
		t.Errorf("Unexpected default sample output path %s", cfg.SampleOutputPath)
	}
	if cfg.MaxFiles != DefaultMaxFiles || cfg.SampleMaxFiles != DefaultSampleMaxFiles || cfg.SampleMaxLines != DefaultSampleMaxLines {
		t.Errorf("Unexpected default limits: %d %d %d", cfg.MaxFiles, cfg.SampleMaxFiles, cfg.SampleMaxLines)
	}
	if cfg.MetricsFile != "" {
		t.Errorf("Expected metrics file disabled by default, got %q", cfg.MetricsFile)
	}
}

func TestEmptyLogDirDisablesFileLog(t *testing.T) {
	cleanupEnv()
	_ = os.Setenv("LOG_DIR", "")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.LogDir != "" {
		t.Errorf("Expected empty log dir, got %q", cfg.LogDir)
	}
}

func TestInvalidValues(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"unknown env", "ENV", "invalid", "ENV must be one of"},
		{"unknown log level", "LOG_LEVEL", "invalid", "LOG_LEVEL must be one of"},
		{"negative max files", "MAX_FILES", "-1", "MAX_FILES cannot be negative"},
		{"negative sample files", "SAMPLE_MAX_FILES", "-2", "SAMPLE_MAX_FILES cannot be negative"},
		{"negative sample lines", "SAMPLE_MAX_LINES", "-5", "SAMPLE_MAX_LINES cannot be negative"},
		{"blank db path", "DB_PATH", "   ", "DB_PATH cannot be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanupEnv()
			_ = os.Setenv(tc.key, tc.value)
			defer cleanupEnv()

			_, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%q, got nil", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("Expected error containing %q, got %v", tc.expected, err)
			}
		})
	}
}

func TestNonNumericLimitUsesDefault(t *testing.T) {
	cleanupEnv()
	_ = os.Setenv("MAX_FILES", "ten")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.MaxFiles != DefaultMaxFiles {
		t.Errorf("Expected default max files %d, got %d", DefaultMaxFiles, cfg.MaxFiles)
	}
}

func cleanupEnv() {
	for _, key := range GetEnvVars() {
		_ = os.Unsetenv(key)
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input    string
		expected Environment
		hasError bool
	}{
		{"dev", EnvDevelopment, false},
		{"development", EnvDevelopment, false},
		{"staging", EnvStaging, false},
		{"prod", EnvProduction, false},
		{"production", EnvProduction, false},
		{"test", EnvTest, false},
		{"invalid", EnvDevelopment, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env, err := ParseEnvironment(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("Expected error for %s, got none", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for %s: %v", tt.input, err)
				}
				if env != tt.expected {
					t.Errorf("Expected %v, got %v", tt.expected, env)
				}
			}
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	tests := []struct {
		env      Environment
		expected string
	}{
		{EnvDevelopment, "dev"},
		{EnvStaging, "staging"},
		{EnvProduction, "prod"},
		{EnvTest, "test"},
	}

	for _, tt := range tests {
		if got := tt.env.String(); got != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, got)
		}
	}
}
