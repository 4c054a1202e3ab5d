// Package app wires configuration, logging and metrics around a conversion
// pipeline for the command line entry points.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/greendata20/disablility-monitoring/config"
	"github.com/greendata20/disablility-monitoring/converter"
	"github.com/greendata20/disablility-monitoring/logging"
	"github.com/greendata20/disablility-monitoring/metrics"
	"github.com/joho/godotenv"
)

// Main runs the pipeline variant and returns the process exit code.
func Main(variant string) int {
	// The .env file is optional, defaults cover every setting
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	service := logging.InitLogger(cfg.LogDir, logging.GetConsoleLogLevel(cfg.Env, cfg.LogLevel, false))
	defer func() {
		if err := service.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close run log: %v\n", err)
		}
	}()

	if err := Run(cfg, variant, os.Stdout); err != nil {
		logging.Error("Conversion failed", "variant", variant, "error", err)
		return 1
	}
	return 0
}

// Run executes one conversion of the given variant with cfg. Progress and
// the completion summary go to out.
func Run(cfg *config.Config, variant string, out io.Writer) error {
	recorder := metrics.NewRecorder(variant)

	var pipeline *converter.Pipeline
	switch variant {
	case converter.VariantFull:
		pipeline = converter.NewFullPipeline(cfg, recorder)
	case converter.VariantSample:
		pipeline = converter.NewSamplePipeline(cfg, recorder)
		fmt.Fprintln(out, "Creating sample data...")
	default:
		return fmt.Errorf("unknown pipeline variant %q", variant)
	}
	pipeline.Summary = out
	pipeline.Converter.SetProgress(out)

	start := time.Now()
	result, runErr := pipeline.Run()

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			logging.Warn("Failed to export metrics", "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	logging.Info("Run finished", "variant", variant, "duration", time.Since(start).String())
	if variant == converter.VariantSample {
		fmt.Fprintf(out, "\n✓ Sample data saved to: %s\n", result.OutputPath)
	} else {
		fmt.Fprintf(out, "\n✓ Data saved to: %s\n", result.OutputPath)
	}
	return nil
}
