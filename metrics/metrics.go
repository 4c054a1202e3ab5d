// Package metrics provides Prometheus metrics for a conversion run.
// It exports five metrics, all labelled with the pipeline variant:
//   - convert_files_processed_total: Counter with folder label
//   - convert_files_failed_total: Counter with folder label
//   - convert_rows_parsed_total: Counter with folder label
//   - convert_duplicates_removed_total: Counter with bucket label
//   - convert_bucket_rows: Gauge with bucket label, rows written per bucket
//
// A batch run has no scrape endpoint, so the metrics are written to a file in
// the Prometheus text format for the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/greendata20/disablility-monitoring/interfaces"
	"github.com/prometheus/client_golang/prometheus"
)

// Compile-time check to ensure Recorder implements RunRecorder interface
var _ interfaces.RunRecorder = (*Recorder)(nil)

// Recorder collects the metrics of one run in its own registry
type Recorder struct {
	registry          *prometheus.Registry
	filesProcessed    *prometheus.CounterVec
	filesFailed       *prometheus.CounterVec
	rowsParsed        *prometheus.CounterVec
	duplicatesRemoved *prometheus.CounterVec
	bucketRows        *prometheus.GaugeVec
}

// NewRecorder creates a Recorder whose metrics carry variant as a constant label
func NewRecorder(variant string) *Recorder {
	constLabels := prometheus.Labels{"variant": variant}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		filesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "convert_files_processed_total",
				Help:        "CSV files parsed successfully",
				ConstLabels: constLabels,
			},
			[]string{"folder"},
		),
		filesFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "convert_files_failed_total",
				Help:        "CSV files skipped because of a read or decode error",
				ConstLabels: constLabels,
			},
			[]string{"folder"},
		),
		rowsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "convert_rows_parsed_total",
				Help:        "Data rows parsed before deduplication",
				ConstLabels: constLabels,
			},
			[]string{"folder"},
		),
		duplicatesRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "convert_duplicates_removed_total",
				Help:        "Rows dropped as exact duplicates",
				ConstLabels: constLabels,
			},
			[]string{"bucket"},
		),
		bucketRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "convert_bucket_rows",
				Help:        "Rows written per bucket",
				ConstLabels: constLabels,
			},
			[]string{"bucket"},
		),
	}

	r.registry.MustRegister(r.filesProcessed)
	r.registry.MustRegister(r.filesFailed)
	r.registry.MustRegister(r.rowsParsed)
	r.registry.MustRegister(r.duplicatesRemoved)
	r.registry.MustRegister(r.bucketRows)

	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) FileProcessed(folder string, records int) {
	r.filesProcessed.WithLabelValues(folder).Inc()
	r.rowsParsed.WithLabelValues(folder).Add(float64(records))
}

func (r *Recorder) FileFailed(folder string) {
	r.filesFailed.WithLabelValues(folder).Inc()
}

func (r *Recorder) DuplicatesRemoved(bucket string, count int) {
	r.duplicatesRemoved.WithLabelValues(bucket).Add(float64(count))
}

func (r *Recorder) BucketSize(bucket string, count int) {
	r.bucketRows.WithLabelValues(bucket).Set(float64(count))
}

// WriteTextfile writes every metric of the run to path in the text format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// NopRecorder discards all statistics
type NopRecorder struct{}

func (NopRecorder) FileProcessed(string, int) {}

func (NopRecorder) FileFailed(string) {}

func (NopRecorder) DuplicatesRemoved(string, int) {}

func (NopRecorder) BucketSize(string, int) {}
