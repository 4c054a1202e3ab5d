// Package interfaces defines the contracts between the conversion stages
// so that the converter can be tested without touching real data folders.
package interfaces

import "github.com/greendata20/disablility-monitoring/csvparser/entities"

// FileParser reads one statistics file and returns its rows in line order.
type FileParser interface {
	ParseFile(path string) ([]entities.Row, error)
}

// DatasetWriter persists a finished dataset.
type DatasetWriter interface {
	// Write stores the dataset and returns the location it was written to.
	Write(dataset *entities.Dataset) (string, error)
}

// RunRecorder collects per-run statistics.
type RunRecorder interface {
	FileProcessed(folder string, records int)
	FileFailed(folder string)
	DuplicatesRemoved(bucket string, count int)
	BucketSize(bucket string, count int)
}
