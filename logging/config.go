// Package logging sets up slog for the conversion tools: text on the console
// and JSON lines in a dated run log file.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/greendata20/disablility-monitoring/config"
)

// parseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to info
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetConsoleLogLevel returns the console level for an environment.
// An explicit level overrides the environment default, except under test
// where the console stays at error unless verbose is set.
func GetConsoleLogLevel(env config.Environment, logLevel string, verbose bool) slog.Level {
	if env == config.EnvTest {
		if verbose {
			return slog.LevelInfo
		}
		return slog.LevelError
	}

	if logLevel != "" {
		return parseLogLevel(logLevel)
	}

	switch env {
	case config.EnvProduction, config.EnvStaging:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// GetFileLogLevel returns the level of the run log file
func GetFileLogLevel() slog.Level {
	return slog.LevelDebug
}

// runLogName returns the log file name for the day of t
func runLogName(t time.Time) string {
	return fmt.Sprintf("convert-%s.log", t.Format("2006-01-02"))
}

// openRunLog opens (or creates) today's run log in logDir for appending
func openRunLog(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logDir, runLogName(time.Now()))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	return file, nil
}

// SetupLogger builds a logger writing text to stdout at consoleLevel and,
// when logDir is not empty, JSON to the run log file. The returned file must
// be closed by the caller; it is nil when no file log is used.
func SetupLogger(logDir string, consoleLevel slog.Level) (*slog.Logger, *os.File) {
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: consoleLevel,
	})

	if logDir == "" {
		return slog.New(consoleHandler), nil
	}

	file, err := openRunLog(logDir)
	if err != nil {
		// If the run log can't be opened, just log to console
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to initialize run log", "error", err)
		return consoleLogger, nil
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: GetFileLogLevel(),
	})

	// Combine handlers - write to both
	return slog.New(&multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	}), file
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enable if any handler enables it
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
