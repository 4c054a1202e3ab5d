package logging

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type LoggingService struct {
	Logger  *slog.Logger
	RunID   string
	logFile *os.File
}

var DefaultLoggingService *LoggingService

// InitLogger initializes the global logger instance for one run. Every
// record carries the run_id attribute.
func InitLogger(logDir string, consoleLevel slog.Level) *LoggingService {
	logger, file := SetupLogger(logDir, consoleLevel)
	runID := uuid.NewString()

	DefaultLoggingService = &LoggingService{
		Logger:  logger.With("run_id", runID),
		RunID:   runID,
		logFile: file,
	}
	slog.SetDefault(DefaultLoggingService.Logger)
	return DefaultLoggingService
}

// Close releases the run log file
func (s *LoggingService) Close() error {
	if s == nil || s.logFile == nil {
		return nil
	}
	err := s.logFile.Close()
	s.logFile = nil
	return err
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		// Fallback to console logger if not initialized
		fallback := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		fallback.Info(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		// Fallback to console logger if not initialized
		fallback := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		fallback.Error(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Error(msg, args...)
}

func Warn(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		// Fallback to console logger if not initialized
		fallback := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
		fallback.Warn(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		// Fallback to console logger if not initialized
		fallback := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		fallback.Debug(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Debug(msg, args...)
}
