package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"go-mvmapper/internal/table"
)

// write serializes the table as CSV. The file is written to a temporary
// name and renamed into place, so a failed write leaves no partial output.
func (e *Exporter) write(t *table.Table, outFile string) (string, error) {
	if outFile == "" {
		outFile = defaultFileName()
	}

	dir := filepath.Dir(outFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &IOError{Path: outFile, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".mvmapper-*.csv")
	if err != nil {
		return "", &IOError{Path: outFile, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := t.WriteCSV(tmp); err != nil {
		tmp.Close()
		return "", &IOError{Path: outFile, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &IOError{Path: outFile, Err: err}
	}
	if err := os.Rename(tmp.Name(), outFile); err != nil {
		return "", &IOError{Path: outFile, Err: err}
	}
	return outFile, nil
}

// defaultFileName synthesizes mvmapper_data_<timestamp>.csv. Nanosecond
// precision plus a uuid fragment keeps concurrent calls from colliding.
func defaultFileName() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05.000000000")
	return fmt.Sprintf("mvmapper_data_%s_%s.csv", timestamp, uuid.NewString()[:8])
}
