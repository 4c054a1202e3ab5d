// Package output writes the aggregated dataset to disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/greendata20/disablility-monitoring/csvparser/entities"
	"github.com/greendata20/disablility-monitoring/interfaces"
	"github.com/greendata20/disablility-monitoring/logging"
)

// Compile-time check to ensure JSONWriter implements DatasetWriter interface
var _ interfaces.DatasetWriter = (*JSONWriter)(nil)

// JSONWriter writes a dataset as an indented JSON document to a fixed path.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a writer targeting path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Path returns the output file path.
func (w *JSONWriter) Path() string {
	return w.path
}

// Write creates the parent directories and replaces the output file with
// the serialized dataset.
func (w *JSONWriter) Write(dataset *entities.Dataset) (string, error) {
	data, err := Marshal(dataset)
	if err != nil {
		return "", err
	}

	if err := ensureDir(w.path); err != nil {
		return "", err
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", w.path, err)
	}

	logging.Debug("Dataset written", "path", w.path, "bytes", len(data))
	return w.path, nil
}

// Marshal serializes the dataset with two-space indentation, without HTML
// escaping and without a trailing newline.
func Marshal(dataset *entities.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}
