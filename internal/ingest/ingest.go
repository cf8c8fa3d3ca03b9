// Package ingest loads export inputs: per-entity metadata from CSV sources
// and serialized analysis results from JSON files.
package ingest

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go-mvmapper/internal/analysis"
	"go-mvmapper/internal/table"
)

// ReadMetadata reads per-entity metadata from a local CSV file or an
// http(s) URL.
func ReadMetadata(pathOrURL string) (*table.Table, error) {
	var reader io.Reader
	if isURL(pathOrURL) {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to GET metadata CSV: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to GET metadata CSV: %s returned %s", pathOrURL, resp.Status)
		}
		reader = resp.Body
	} else {
		file, err := os.Open(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open metadata CSV: %w", err)
		}
		defer file.Close()
		reader = file
	}

	t, err := table.ReadCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata from %s: %w", pathOrURL, err)
	}
	return t, nil
}

// isURL distinguishes remote sources from local paths. A bare "http" prefix
// would misclassify files like httpdata.csv.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ReadAnalysis reads a JSON-serialized analysis result from a file.
func ReadAnalysis(path string) (analysis.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analysis result: %w", err)
	}
	defer file.Close()

	res, err := analysis.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis result from %s: %w", path, err)
	}
	return res, nil
}
