package converter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/greendata20/disablility-monitoring/csvparser"
	"github.com/greendata20/disablility-monitoring/csvparser/entities"
	"github.com/greendata20/disablility-monitoring/interfaces"
	"github.com/greendata20/disablility-monitoring/logging"
	"github.com/greendata20/disablility-monitoring/metrics"
)

// ErrFolderRead is returned when a data folder can't be listed.
var ErrFolderRead = errors.New("failed to read data folder")

// Converter reads the data folders under a root directory into a Dataset.
type Converter struct {
	dbPath   string
	maxFiles int
	parser   interfaces.FileParser
	recorder interfaces.RunRecorder
	progress io.Writer
}

// NewConverter creates a converter reading at most maxFiles files per folder
// (zero or less reads all of them). A nil recorder discards statistics.
func NewConverter(dbPath string, maxFiles int, parser interfaces.FileParser, recorder interfaces.RunRecorder) *Converter {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &Converter{
		dbPath:   dbPath,
		maxFiles: maxFiles,
		parser:   parser,
		recorder: recorder,
		progress: os.Stdout,
	}
}

// SetProgress redirects the per-file progress lines.
func (c *Converter) SetProgress(w io.Writer) {
	c.progress = w
}

// Aggregate processes the folders of plan in order and returns the filled
// dataset. A folder that can't be listed aborts the run; a file that can't
// be parsed is reported and skipped.
func (c *Converter) Aggregate(plan []Folder) (*entities.Dataset, error) {
	dataset := entities.NewDataset()

	for _, folder := range plan {
		if err := c.processFolder(dataset, folder); err != nil {
			return nil, err
		}
	}

	return dataset, nil
}

func (c *Converter) processFolder(dataset *entities.Dataset, folder Folder) error {
	folderPath := filepath.Join(c.dbPath, folder.Name)
	logging.Info("Processing folder", "folder", folderPath, "bucket", folder.Bucket)

	files, err := csvparser.ListCSVFiles(folderPath, c.maxFiles)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFolderRead, err)
	}

	for _, file := range files {
		name := filepath.Base(file)

		rows, err := c.parser.ParseFile(file)
		if err != nil {
			c.recorder.FileFailed(folder.Name)
			logging.Error("Error processing file", "file", name, "folder", folder.Name, "error", err)
			fmt.Fprintf(c.progress, "✗ Error processing %s: %v\n", name, err)
			continue
		}

		if err := dataset.Append(folder.Bucket, rows...); err != nil {
			return fmt.Errorf("folder %s: %w", folder.Name, err)
		}

		c.recorder.FileProcessed(folder.Name, len(rows))
		logging.Debug("Processed file", "file", name, "folder", folder.Name, "records", len(rows))
		fmt.Fprintf(c.progress, "✓ Processed: %s (%d records)\n", name, len(rows))
	}

	return nil
}
