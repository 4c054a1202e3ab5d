package converter

import (
	"fmt"
	"io"
	"os"

	"github.com/greendata20/disablility-monitoring/config"
	"github.com/greendata20/disablility-monitoring/csvparser"
	"github.com/greendata20/disablility-monitoring/csvparser/entities"
	"github.com/greendata20/disablility-monitoring/dedup"
	"github.com/greendata20/disablility-monitoring/interfaces"
	"github.com/greendata20/disablility-monitoring/logging"
	"github.com/greendata20/disablility-monitoring/metrics"
	"github.com/greendata20/disablility-monitoring/output"
)

// Pipeline variants
const (
	VariantFull   = "full"
	VariantSample = "sample"
)

// Pipeline runs one conversion from the data folders to an output file.
type Pipeline struct {
	Variant     string
	Plan        []Folder
	Deduplicate bool
	Converter   *Converter
	Writer      interfaces.DatasetWriter
	Recorder    interfaces.RunRecorder
	Summary     io.Writer
}

// Result describes a finished run.
type Result struct {
	Dataset    *entities.Dataset
	OutputPath string
	// Removed holds the duplicates dropped per bucket; nil when the
	// pipeline does not deduplicate.
	Removed map[string]int
}

// NewFullPipeline builds the pipeline over all six folders with
// deduplication.
func NewFullPipeline(cfg *config.Config, recorder interfaces.RunRecorder) *Pipeline {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &Pipeline{
		Variant:     VariantFull,
		Plan:        FullPlan,
		Deduplicate: true,
		Converter:   NewConverter(cfg.DBPath, cfg.MaxFiles, csvparser.NewParser(0), recorder),
		Writer:      output.NewJSONWriter(cfg.OutputPath),
		Recorder:    recorder,
		Summary:     os.Stdout,
	}
}

// NewSamplePipeline builds the lightweight pipeline: fewer folders, capped
// files and lines, no deduplication.
func NewSamplePipeline(cfg *config.Config, recorder interfaces.RunRecorder) *Pipeline {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &Pipeline{
		Variant:     VariantSample,
		Plan:        SamplePlan,
		Deduplicate: false,
		Converter:   NewConverter(cfg.DBPath, cfg.SampleMaxFiles, csvparser.NewParser(cfg.SampleMaxLines), recorder),
		Writer:      output.NewJSONWriter(cfg.SampleOutputPath),
		Recorder:    recorder,
		Summary:     os.Stdout,
	}
}

// Run aggregates, optionally deduplicates and writes the dataset.
func (p *Pipeline) Run() (*Result, error) {
	logging.Info("Starting conversion", "variant", p.Variant, "folders", len(p.Plan))

	dataset, err := p.Converter.Aggregate(p.Plan)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}

	result := &Result{Dataset: dataset}

	if p.Deduplicate {
		removed, err := dedup.Dataset(dataset)
		if err != nil {
			return nil, fmt.Errorf("deduplication failed: %w", err)
		}
		for bucket, count := range removed {
			p.Recorder.DuplicatesRemoved(bucket, count)
		}
		result.Removed = removed
	}

	p.printSummary(dataset)

	path, err := p.Writer.Write(dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to save dataset: %w", err)
	}
	result.OutputPath = path

	logging.Info("Conversion completed", "variant", p.Variant, "output", path)
	return result, nil
}

func (p *Pipeline) printSummary(dataset *entities.Dataset) {
	title := "데이터 변환 완료"
	if p.Variant == VariantSample {
		title = "샘플 데이터 생성 완료"
	}

	fmt.Fprintf(p.Summary, "\n=== %s ===\n", title)
	for _, bucket := range dataset.Buckets() {
		p.Recorder.BucketSize(bucket.Name, len(bucket.Rows))
		logging.Debug("Bucket summary", "bucket", bucket.Name, "records", len(bucket.Rows))
		fmt.Fprintf(p.Summary, "%s: %d records\n", bucket.Name, len(bucket.Rows))
	}
}
