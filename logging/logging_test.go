package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/greendata20/disablility-monitoring/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLogLevel(tt.input)
			if got != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetConsoleLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		env         config.Environment
		logLevelStr string
		verbose     bool
		expected    slog.Level
	}{
		{"dev defaults to info", config.EnvDevelopment, "", false, slog.LevelInfo},
		{"test quiet defaults to error", config.EnvTest, "", false, slog.LevelError},
		{"test verbose defaults to info", config.EnvTest, "", true, slog.LevelInfo},
		{"prod defaults to warn", config.EnvProduction, "", false, slog.LevelWarn},
		{"staging defaults to warn", config.EnvStaging, "", false, slog.LevelWarn},
		{"prod with debug override", config.EnvProduction, "debug", false, slog.LevelDebug},
		{"dev with error override", config.EnvDevelopment, "error", false, slog.LevelError},
		{"test with debug override (ignored)", config.EnvTest, "debug", false, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetConsoleLogLevel(tt.env, tt.logLevelStr, tt.verbose)
			if got != tt.expected {
				t.Errorf("GetConsoleLogLevel(%v, %q, %v) = %v, want %v", tt.env, tt.logLevelStr, tt.verbose, got, tt.expected)
			}
		})
	}
}

func TestGetFileLogLevel(t *testing.T) {
	got := GetFileLogLevel()
	if got != slog.LevelDebug {
		t.Errorf("GetFileLogLevel() = %v, want %v", got, slog.LevelDebug)
	}
}

func TestSetupLoggerWithoutLogDir(t *testing.T) {
	logger, file := SetupLogger("", slog.LevelError)
	if logger == nil {
		t.Fatal("Expected logger, got nil")
	}
	if file != nil {
		t.Errorf("Expected no log file when log dir is empty")
	}
}

func TestInitLoggerWritesRunLog(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	service := InitLogger(logDir, slog.LevelError)
	defer func() {
		DefaultLoggingService = nil
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}()

	if service.RunID == "" {
		t.Fatal("Expected a run id")
	}

	Debug("debug record", "folder", "1")
	Info("info record", "records", 3)

	if err := service.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Closing twice is harmless
	if err := service.Close(); err != nil {
		t.Fatalf("Second close failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(logDir, runLogName(time.Now())))
	if err != nil {
		t.Fatalf("Failed to read run log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), content)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &record); err != nil {
		t.Fatalf("Run log line is not JSON: %v", err)
	}
	if record["msg"] != "info record" {
		t.Errorf("Expected msg 'info record', got %v", record["msg"])
	}
	if record["run_id"] != service.RunID {
		t.Errorf("Expected run_id %s, got %v", service.RunID, record["run_id"])
	}
	if record["records"] != float64(3) {
		t.Errorf("Expected records 3, got %v", record["records"])
	}
}

func TestFallbackWithoutInit(t *testing.T) {
	DefaultLoggingService = nil

	// Must not panic when no logger was initialised
	Info("fallback info")
	Warn("fallback warn")
	Error("fallback error")
	Debug("fallback debug")
}

func TestCloseNilService(t *testing.T) {
	var service *LoggingService
	if err := service.Close(); err != nil {
		t.Errorf("Expected nil error closing nil service, got %v", err)
	}
}
