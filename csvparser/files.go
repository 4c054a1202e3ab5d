package csvparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListCSVFiles returns the paths of the entries of dir whose name ends with
// ".csv", in directory listing order. When maxFiles is positive the result
// is truncated to that many paths.
func ListCSVFiles(dir string, maxFiles int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		// Suffix match is case-sensitive: "DATA.CSV" is ignored
		if !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if maxFiles > 0 && len(files) > maxFiles {
		files = files[:maxFiles]
	}

	return files, nil
}
